package ids

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLength is the number of hex characters in a fingerprint.
const FingerprintLength = 7

// Fingerprint returns the first length lowercase hex characters of the
// sha256 digest of input. The input bytes are hashed as given.
func Fingerprint(input string, length int) string {
	if length <= 0 {
		return ""
	}
	hash := sha256.Sum256([]byte(input))
	encoded := hex.EncodeToString(hash[:])
	if length > len(encoded) {
		length = len(encoded)
	}
	return encoded[:length]
}
