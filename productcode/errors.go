package productcode

import "errors"

var (
	// ErrNameTooShort is returned when the normalized name has fewer than two letters.
	ErrNameTooShort = errors.New("name too short for code")

	// ErrNoIncreasingSubstring is returned when no adjacent letter pair of the
	// normalized name is strictly increasing.
	ErrNoIncreasingSubstring = errors.New("no increasing substring")

	// ErrCodeSpaceExhausted is returned when every candidate within the attempt
	// bound is already taken.
	ErrCodeSpaceExhausted = errors.New("code space exhausted")

	// ErrNilChecker is returned when resolution is attempted without a Checker.
	ErrNilChecker = errors.New("existence checker is required")

	// ErrInvalidCode is returned by Parse for strings that are not product codes.
	ErrInvalidCode = errors.New("invalid product code")
)

// IsInvalidName reports whether err means the name itself cannot produce a
// code, so retrying with the same name is pointless.
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrNameTooShort) || errors.Is(err, ErrNoIncreasingSubstring)
}
