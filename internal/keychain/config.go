package keychain

import "keychain/internal/crypto"

// Config holds the tunables of a Keychain.
type Config struct {
	Iterations      int                 // PBKDF2 work factor
	MaxSecretLength int                 // maximum secret length in characters
	SaltSize        int                 // salt bytes generated by Init
	Random          crypto.RandomSource // source of salt and nonce
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		Iterations:      crypto.DefaultIterations,
		MaxSecretLength: 64,
		SaltSize:        crypto.SaltBytes,
		Random:          crypto.SystemRandom{},
	}
}

// Option adjusts a Config.
type Option func(*Config)

// WithIterations overrides the PBKDF2 iteration count. Load must use the
// same count that Init used.
func WithIterations(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Iterations = n
		}
	}
}

// WithMaxSecretLength overrides the maximum secret length accepted by Set.
func WithMaxSecretLength(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxSecretLength = n
		}
	}
}

// WithRandom replaces the random source used for salt and nonce generation.
func WithRandom(r crypto.RandomSource) Option {
	return func(c *Config) {
		if r != nil {
			c.Random = r
		}
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
