package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"keychain/internal/domain"
)

const (
	vaultFilename  = "vault.json"
	digestFilename = "vault.sha256"
)

// SnapshotFileStore keeps the keychain representation and its digest in two
// files under dir. The digest file is written last so a crash between the two
// writes is caught by the integrity check on the next open.
type SnapshotFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSnapshotFileStore returns a SnapshotFileStore rooted at dir.
func NewSnapshotFileStore(dir string) *SnapshotFileStore {
	return &SnapshotFileStore{dir: dir}
}

// SaveSnapshot writes the representation and digest to disk.
func (s *SnapshotFileStore) SaveSnapshot(snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(s.dir, vaultFilename), []byte(snap.Repr), 0o600); err != nil {
		return fmt.Errorf("write vault: %w", err)
	}
	if err := writeFile(filepath.Join(s.dir, digestFilename), []byte(snap.Digest+"\n"), 0o600); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}

// LoadSnapshot reads the stored snapshot. A missing vault file reports
// ok=false; a missing digest file yields an empty Digest.
func (s *SnapshotFileStore) LoadSnapshot() (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repr, err := readFile(filepath.Join(s.dir, vaultFilename))
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("read vault: %w", err)
	}
	if repr == nil {
		return domain.Snapshot{}, false, nil
	}
	digest, err := readFile(filepath.Join(s.dir, digestFilename))
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("read digest: %w", err)
	}
	return domain.Snapshot{
		Repr:   string(repr),
		Digest: strings.TrimSpace(string(digest)),
	}, true, nil
}

// Exists reports whether a vault file is present.
func (s *SnapshotFileStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, vaultFilename))
	return err == nil
}

// Compile-time assertion that SnapshotFileStore implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*SnapshotFileStore)(nil)
