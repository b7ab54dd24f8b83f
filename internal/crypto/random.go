package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomSource supplies cryptographically secure random bytes.
type RandomSource interface {
	RandomBytes(n int) ([]byte, error)
}

// SystemRandom reads from crypto/rand.
type SystemRandom struct{}

// RandomBytes returns n bytes from the operating system CSPRNG.
func (SystemRandom) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

var _ RandomSource = SystemRandom{}
