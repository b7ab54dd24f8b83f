package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
)

// ErrDigestMismatch is returned by Verify when data does not hash to the
// expected digest.
var ErrDigestMismatch = errors.New("digest mismatch")

// Digest returns the base64 SHA-256 digest of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return B64(sum[:])
}

// Verify recomputes the digest of data and compares it byte for byte with
// expected. Encoding variants of the same hash are not accepted.
func Verify(data []byte, expected string) error {
	got := Digest(data)
	if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
		return ErrDigestMismatch
	}
	return nil
}
