package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// NonceBytes is the standard AES-GCM nonce size.
const NonceBytes = 12

// ErrDecrypt is returned when a ciphertext does not authenticate under the
// given key and nonce, or is not valid base64.
var ErrDecrypt = errors.New("ciphertext failed authentication")

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyBytes {
		return nil, fmt.Errorf("invalid key size: want %d bytes, got %d", KeyBytes, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create aes cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext under key and nonce with AES-256-GCM and returns the
// ciphertext and tag as base64 text. Equal inputs produce equal output.
func Encrypt(key, nonce []byte, plaintext string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("invalid nonce size: want %d bytes, got %d", gcm.NonceSize(), len(nonce))
	}
	return B64(gcm.Seal(nil, nonce, []byte(plaintext), nil)), nil
}

// Decrypt opens base64 ciphertext produced by Encrypt. Any modification of the
// ciphertext or tag, or a different key or nonce, yields ErrDecrypt.
func Decrypt(key, nonce []byte, ciphertext string) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("invalid nonce size: want %d bytes, got %d", gcm.NonceSize(), len(nonce))
	}
	raw, err := FromB64(ciphertext)
	if err != nil {
		return "", ErrDecrypt
	}
	pt, err := gcm.Open(nil, nonce, raw, nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(pt), nil
}
