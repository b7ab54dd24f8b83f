package app

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"keychain/internal/domain"
	"keychain/internal/keychain"
	vaultsvc "keychain/internal/services/vault"
	"keychain/internal/store"
)

// Wire bundles the logger, store and service for the CLI.
type Wire struct {
	Log   zerolog.Logger
	Store domain.SnapshotStore
	Vault domain.VaultService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log := newLogger(cfg)
	snapshots := store.NewSnapshotFileStore(cfg.Home)

	var opts []keychain.Option
	if cfg.Iterations > 0 {
		opts = append(opts, keychain.WithIterations(cfg.Iterations))
	}

	return &Wire{
		Log:   log,
		Store: snapshots,
		Vault: vaultsvc.New(snapshots, log, opts...),
	}, nil
}

func newLogger(cfg Config) zerolog.Logger {
	out := cfg.Log
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("home", cfg.Home).
		Logger()
}
