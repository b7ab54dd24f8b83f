package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"keychain/internal/crypto"
	"keychain/internal/domain"
	"keychain/internal/keychain"
)

const (
	// minPasswordLength defines the minimum number of characters required for a master password.
	minPasswordLength = 8
)

var (
	// ErrWeakPassword is returned when the master password fails the strength policy.
	ErrWeakPassword = fmt.Errorf("master password is too weak (must be at least %d characters)", minPasswordLength)
	// ErrVaultExists is returned by Create when a vault is already stored.
	ErrVaultExists = errors.New("vault already exists")
	// ErrVaultNotFound is returned when no vault has been stored yet.
	ErrVaultNotFound = errors.New("no vault found; run init first")
)

// Service manages the lifecycle of a keychain persisted in a snapshot store.
//
// Callers follow each mutation with Save, which dumps the keychain and writes the
// representation together with its digest. Open refuses any snapshot whose
// digest does not match.
type Service struct {
	store domain.SnapshotStore
	opts  []keychain.Option
	log   zerolog.Logger
}

// New returns a vault service backed by the given store. opts are passed to
// every keychain Init and Load.
func New(s domain.SnapshotStore, log zerolog.Logger, opts ...keychain.Option) *Service {
	return &Service{store: s, opts: opts, log: log.With().Str("component", "vault").Logger()}
}

// Create initialises a new keychain under password and stores it. It fails
// with ErrVaultExists rather than overwrite an existing vault.
func (s *Service) Create(ctx context.Context, password string) (*keychain.Keychain, error) {
	if !isAcceptablePassword(password) {
		return nil, ErrWeakPassword
	}
	if s.store.Exists() {
		return nil, ErrVaultExists
	}

	kc, err := keychain.Init(ctx, password, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("init keychain: %w", err)
	}
	if _, err := s.Save(kc); err != nil {
		kc.Close()
		return nil, err
	}
	s.log.Info().Msg("vault created")
	return kc, nil
}

// Open loads the stored keychain. trustedDigest, when non-empty, replaces the
// digest kept next to the vault; use it to pin a checksum recorded elsewhere
// and reject rolled-back snapshots.
func (s *Service) Open(ctx context.Context, password, trustedDigest string) (*keychain.Keychain, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	digest := pickDigest(snap, trustedDigest)
	if digest == "" {
		return nil, fmt.Errorf("%w: no digest stored for vault", keychain.ErrIntegrity)
	}

	kc, err := keychain.Load(ctx, password, snap.Repr, digest, s.opts...)
	if err != nil {
		s.log.Warn().Err(err).Msg("vault open rejected")
		return nil, err
	}
	s.log.Debug().Int("entries", kc.Len()).Bool("pinned", trustedDigest != "").Msg("vault opened")
	return kc, nil
}

// Save dumps kc and writes the snapshot to the store.
func (s *Service) Save(kc *keychain.Keychain) (domain.Snapshot, error) {
	repr, digest, err := kc.Dump()
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("dump keychain: %w", err)
	}
	snap := domain.Snapshot{Repr: repr, Digest: digest}
	if err := s.store.SaveSnapshot(snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	s.log.Debug().Int("entries", kc.Len()).Str("digest", digest).Msg("vault saved")
	return snap, nil
}

// Verify checks the stored representation against trustedDigest, or against
// the stored digest when trustedDigest is empty. No password is needed.
func (s *Service) Verify(trustedDigest string) (domain.Snapshot, error) {
	snap, err := s.load()
	if err != nil {
		return domain.Snapshot{}, err
	}
	digest := pickDigest(snap, trustedDigest)
	if err := crypto.Verify([]byte(snap.Repr), digest); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", keychain.ErrIntegrity, err)
	}
	s.log.Debug().Str("digest", digest).Msg("vault integrity verified")
	return snap, nil
}

func (s *Service) load() (domain.Snapshot, error) {
	snap, ok, err := s.store.LoadSnapshot()
	if err != nil {
		return domain.Snapshot{}, err
	}
	if !ok {
		return domain.Snapshot{}, ErrVaultNotFound
	}
	return snap, nil
}

func pickDigest(snap domain.Snapshot, trusted string) string {
	if trusted != "" {
		return trusted
	}
	return snap.Digest
}

// isAcceptablePassword enforces a basic length policy.
func isAcceptablePassword(password string) bool {
	if strings.TrimSpace(password) == "" {
		return false
	}
	return utf8.RuneCountInString(password) >= minPasswordLength
}

// Compile-time assertion that Service implements domain.VaultService.
var _ domain.VaultService = (*Service)(nil)
