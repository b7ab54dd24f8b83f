package domain

import (
	"context"

	"keychain/internal/keychain"
)

// SnapshotStore persists the latest keychain snapshot.
type SnapshotStore interface {
	SaveSnapshot(s Snapshot) error
	// LoadSnapshot returns the stored snapshot and whether one was present.
	LoadSnapshot() (Snapshot, bool, error)
	Exists() bool
}

// VaultService creates, opens and saves keychains backed by a SnapshotStore.
type VaultService interface {
	Create(ctx context.Context, password string) (*keychain.Keychain, error)
	Open(ctx context.Context, password, trustedDigest string) (*keychain.Keychain, error)
	Save(kc *keychain.Keychain) (Snapshot, error)
	Verify(trustedDigest string) (Snapshot, error)
}
