package cursor

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// lastTestedVersion is the newest Cursor release the main.js patch
// patterns were checked against. Newer builds may rename the minified
// locals around the registry probe, leaving the literal pattern unmatched.
const lastTestedVersion = "0.45.8"

// Product is the subset of the app's product.json we care about.
type Product struct {
	NameShort string `json:"nameShort"`
	Version   string `json:"version"`
}

// ReadProduct parses the product.json at path.
func ReadProduct(path string) (*Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// NewerThanTested reports whether version is newer than the last release
// the patch patterns were verified against. Unparseable versions count
// as newer so callers warn instead of staying quiet.
func NewerThanTested(version string) bool {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return true
	}
	return v.GreaterThan(semver.MustParse(lastTestedVersion))
}
