package productcode

import internalstrings "github.com/amonks/prodcode/internal/strings"

// MinNameLength is the minimum number of letters a normalized name needs.
const MinNameLength = 2

// Normalize lowercases name and drops every character outside 'a'-'z'.
// The surviving letters keep their order.
func Normalize(name string) string {
	return internalstrings.KeepLowerASCIILetters(internalstrings.NormalizeLower(name))
}
