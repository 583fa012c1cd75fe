package productcode

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/amonks/prodcode/internal/ids"
)

var codePattern = regexp.MustCompile(`^([0-9a-f]{7})-(\d+)([a-z]+)(\d+)(?:-(\d+))?$`)

// Fingerprint returns the seven character hex fingerprint of the raw name.
func Fingerprint(name string) string {
	return ids.Fingerprint(name, ids.FingerprintLength)
}

// Assemble formats a candidate code from a fingerprint and a selection.
func Assemble(fingerprint string, sel Selection) string {
	return fingerprint + "-" + strconv.Itoa(sel.Start) + sel.Concat + strconv.Itoa(sel.End)
}

// WithSuffix returns candidate with the -n disambiguation suffix.
// n of zero returns candidate unchanged.
func WithSuffix(candidate string, n int) string {
	if n == 0 {
		return candidate
	}
	return candidate + "-" + strconv.Itoa(n)
}

// Valid reports whether s has the shape of a product code.
func Valid(s string) bool {
	return codePattern.MatchString(s)
}

// Parts is a product code split into its fields.
type Parts struct {
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	Start       int    `json:"start" yaml:"start"`
	Letters     string `json:"letters" yaml:"letters"`
	End         int    `json:"end" yaml:"end"`
	// Suffix is zero when the code carries no disambiguation suffix.
	Suffix int `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Base returns the code without its disambiguation suffix.
func (p Parts) Base() string {
	return p.Fingerprint + "-" + strconv.Itoa(p.Start) + p.Letters + strconv.Itoa(p.End)
}

// Parse splits a product code into its fields.
func Parse(s string) (Parts, error) {
	match := codePattern.FindStringSubmatch(s)
	if match == nil {
		return Parts{}, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}

	parts := Parts{Fingerprint: match[1], Letters: match[3]}
	var err error
	if parts.Start, err = strconv.Atoi(match[2]); err != nil {
		return Parts{}, fmt.Errorf("%w: start index: %v", ErrInvalidCode, err)
	}
	if parts.End, err = strconv.Atoi(match[4]); err != nil {
		return Parts{}, fmt.Errorf("%w: end index: %v", ErrInvalidCode, err)
	}
	if match[5] != "" {
		if parts.Suffix, err = strconv.Atoi(match[5]); err != nil {
			return Parts{}, fmt.Errorf("%w: suffix: %v", ErrInvalidCode, err)
		}
	}
	return parts, nil
}
