package patch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cursorid-labs/cursorid/internal/backup"
	"github.com/cursorid-labs/cursorid/internal/cursor"
)

// Outcome classifies a patch attempt.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeFileMissing
	OutcomeUnsupported
	OutcomeVerifyMiss
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeFileMissing:
		return "file missing"
	case OutcomeUnsupported:
		return "unsupported platform"
	case OutcomeVerifyMiss:
		return "verification miss"
	default:
		return "failed"
	}
}

// File applies the platform's patch rule to the script at path: back it
// up, read it, rewrite it, write it back, then check the replacement
// text actually landed. The write is kept even when verification
// misses; the caller gets a warning, not a rollback.
func File(out io.Writer, path string, family cursor.Family) (Outcome, error) {
	rule, ok := RuleFor(family)
	if !ok {
		fmt.Fprintf(out, "Warning: patching main.js is not supported on %s\n", family)
		return OutcomeUnsupported, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(out, "Warning: main.js not found: %s\n", path)
		return OutcomeFileMissing, nil
	}

	if _, err := backup.Create(out, path); err != nil {
		return OutcomeFailed, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("reading %s: %w", path, err)
	}

	patched := rule.Apply(string(raw))
	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return OutcomeFailed, fmt.Errorf("writing %s: %w", path, err)
	}

	// Weak by intent: only the replacement's presence is checked, not
	// the absence of the original probe or the surrounding syntax.
	if !strings.Contains(patched, rule.Replacement) {
		fmt.Fprintf(out, "Warning: main.js may not have been patched; restore from %s.backup_* if Cursor misbehaves\n", path)
		return OutcomeVerifyMiss, nil
	}

	fmt.Fprintf(out, "Patched %s\n", path)
	return OutcomeApplied, nil
}
