package keychain

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/awnumar/memguard"

	"keychain/internal/crypto"
)

// Keychain is an unlocked vault of encrypted (domain, secret) pairs.
//
// Entries are keyed by the base64 AES-GCM ciphertext of the domain name and
// hold the base64 ciphertext of the secret. Plaintext domains and secrets are
// never stored.
type Keychain struct {
	cfg Config

	mu       sync.RWMutex
	key      *memguard.Enclave
	salt     []byte
	nonce    []byte
	verifier string
	entries  map[string]string
}

// Init creates a new, empty Keychain locked by password. A fresh salt and
// nonce are drawn from the configured random source.
func Init(ctx context.Context, password string, opts ...Option) (*Keychain, error) {
	cfg := newConfig(opts)

	salt, err := cfg.Random.RandomBytes(cfg.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	nonce, err := cfg.Random.RandomBytes(crypto.NonceBytes)
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := crypto.DeriveKey(password, salt, cfg.Iterations)
	verifier, err := crypto.Encrypt(key, nonce, password)
	if err != nil {
		memguard.WipeBytes(key)
		return nil, fmt.Errorf("encrypt verifier: %w", err)
	}

	return &Keychain{
		cfg:      cfg,
		key:      memguard.NewEnclave(key), // wipes key
		salt:     salt,
		nonce:    nonce,
		verifier: verifier,
		entries:  make(map[string]string),
	}, nil
}

// Load reconstructs a Keychain from a representation produced by Dump.
//
// When digest is non-empty it must equal the SHA-256 digest of repr, checked
// before any parsing; otherwise ErrIntegrity is returned. A wrong password or
// a modified verifier yields ErrAuthentication. On any error no Keychain is
// returned.
func Load(ctx context.Context, password, repr, digest string, opts ...Option) (*Keychain, error) {
	cfg := newConfig(opts)

	if digest != "" {
		if err := crypto.Verify([]byte(repr), digest); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIntegrity, err)
		}
	}

	p, err := decodeRepresentation(repr)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := crypto.DeriveKey(password, p.salt, cfg.Iterations)
	got, err := crypto.Decrypt(key, p.nonce, p.verifier)
	if err != nil {
		memguard.WipeBytes(key)
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(password)) != 1 {
		memguard.WipeBytes(key)
		return nil, fmt.Errorf("%w: verifier mismatch", ErrAuthentication)
	}

	return &Keychain{
		cfg:      cfg,
		key:      memguard.NewEnclave(key),
		salt:     p.salt,
		nonce:    p.nonce,
		verifier: p.verifier,
		entries:  p.entries,
	}, nil
}

// Dump serialises the Keychain and returns the representation together with
// its base64 SHA-256 digest. It does not modify the Keychain.
func (k *Keychain) Dump() (repr, digest string, err error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.key == nil {
		return "", "", ErrClosed
	}
	repr, err = encodeRepresentation(persisted{
		entries:  k.entries,
		nonce:    k.nonce,
		salt:     k.salt,
		verifier: k.verifier,
	})
	if err != nil {
		return "", "", fmt.Errorf("encode representation: %w", err)
	}
	return repr, crypto.Digest([]byte(repr)), nil
}

// Get returns the secret stored for domain. The boolean is false when no
// entry exists; absence is not an error.
func (k *Keychain) Get(domain string) (string, bool, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var secret string
	var found bool
	err := k.withKey(func(key []byte) error {
		encDomain, err := crypto.Encrypt(key, k.nonce, domain)
		if err != nil {
			return err
		}
		encSecret, ok := k.entries[encDomain]
		if !ok {
			return nil
		}
		secret, err = crypto.Decrypt(key, k.nonce, encSecret)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAuthentication, err)
		}
		found = true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return secret, found, nil
}

// Set stores secret for domain, replacing any previous value. Blank input
// yields ErrInvalidInput and an over-long secret ErrTooLong; neither modifies
// the Keychain.
func (k *Keychain) Set(domain, secret string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key == nil {
		return ErrClosed
	}
	if strings.TrimSpace(domain) == "" || strings.TrimSpace(secret) == "" {
		return ErrInvalidInput
	}
	if n := utf8.RuneCountInString(secret); n > k.cfg.MaxSecretLength {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrTooLong, n, k.cfg.MaxSecretLength)
	}

	return k.withKey(func(key []byte) error {
		encDomain, err := crypto.Encrypt(key, k.nonce, domain)
		if err != nil {
			return err
		}
		encSecret, err := crypto.Encrypt(key, k.nonce, secret)
		if err != nil {
			return err
		}
		k.entries[encDomain] = encSecret
		return nil
	})
}

// Remove deletes the entry for domain and reports whether one existed.
func (k *Keychain) Remove(domain string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	var removed bool
	err := k.withKey(func(key []byte) error {
		encDomain, err := crypto.Encrypt(key, k.nonce, domain)
		if err != nil {
			return err
		}
		if _, ok := k.entries[encDomain]; ok {
			delete(k.entries, encDomain)
			removed = true
		}
		return nil
	})
	return removed, err
}

// Len returns the number of stored entries.
func (k *Keychain) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.entries)
}

// Close drops the master key. Later calls to Dump, Get, Set and Remove
// return ErrClosed and Len reports 0. Close is idempotent.
func (k *Keychain) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.key = nil
	k.entries = nil
}

// withKey opens the key enclave for the duration of fn. Callers hold k.mu.
func (k *Keychain) withKey(fn func(key []byte) error) error {
	if k.key == nil {
		return ErrClosed
	}
	buf, err := k.key.Open()
	if err != nil {
		return fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()
	return fn(buf.Bytes())
}
