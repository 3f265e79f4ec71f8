// Package patch rewrites the hardware-id probe inside Cursor's bundled
// main.js so that it reports a freshly generated UUID instead of the
// machine's real identifier.
package patch

import (
	"regexp"
	"strings"

	"github.com/cursorid-labs/cursorid/internal/cursor"
)

// Kind selects how a rule's pattern matches the script text.
type Kind int

const (
	KindLiteral Kind = iota
	KindRegex
)

// Rule is a (pattern, replacement) pair applied to the full script text.
// Exactly one rule is active per run, picked by platform family.
type Rule struct {
	Kind        Kind
	Pattern     string
	Replacement string
}

// Apply returns content with the rule applied. Regex replacements are
// inserted literally: the "$UUID" in the macOS shell fragment must
// survive as text, not expand as a capture-group reference.
func (r Rule) Apply(content string) string {
	if r.Kind == KindRegex {
		return regexp.MustCompile(r.Pattern).ReplaceAllLiteralString(content, r.Replacement)
	}
	return strings.ReplaceAll(content, r.Pattern, r.Replacement)
}

// On macOS the probe shells out to ioreg; the replacement fabricates
// the one output line Cursor parses, with a random lowercase UUID.
const darwinReplacement = `UUID=$(uuidgen | tr '[:upper:]' '[:lower:]');echo \"IOPlatformUUID = \"$UUID\";`

// On Windows the probe lives inside a JS template literal querying the
// registry MachineGuid. The minified local names (y5, n$) are stable
// within a release but not across releases, hence the version warning
// before patching. Backslashes are doubled because the fragment sits in
// JS source, not in a shell.
const (
	windowsPattern     = "`${y5[n$()]}\\\\REG.exe QUERY HKEY_LOCAL_MACHINE\\\\SOFTWARE\\\\Microsoft\\\\Cryptography /v MachineGuid`"
	windowsReplacement = "`powershell -Command \"[guid]::NewGuid().ToString().ToLower()\"`"
)

// RuleFor returns the patch rule for a platform family. ok is false on
// platforms whose Cursor build has no known probe to rewrite.
func RuleFor(f cursor.Family) (Rule, bool) {
	switch f {
	case cursor.FamilyDarwin:
		return Rule{
			Kind:        KindRegex,
			Pattern:     `ioreg -rd1 -c IOPlatformExpertDevice`,
			Replacement: darwinReplacement,
		}, true
	case cursor.FamilyWindows:
		return Rule{
			Kind:        KindLiteral,
			Pattern:     windowsPattern,
			Replacement: windowsReplacement,
		}, true
	default:
		return Rule{}, false
	}
}
