package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyBytes is the size of a derived AES-256 key.
	KeyBytes = 32
	// SaltBytes is the default salt size.
	SaltBytes = 16
	// DefaultIterations is the PBKDF2 work factor.
	DefaultIterations = 100_000
)

// DeriveKey stretches password with salt into a 256-bit key using
// PBKDF2-HMAC-SHA256. The same inputs always yield the same key.
func DeriveKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, KeyBytes, sha256.New)
}
