package vault_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keychain/internal/domain"
	"keychain/internal/keychain"
	"keychain/internal/services/vault"
	"keychain/internal/store"
)

const password = "password123!"

func newService(t *testing.T) (*vault.Service, domain.SnapshotStore) {
	t.Helper()
	st := store.NewSnapshotFileStore(t.TempDir())
	return vault.New(st, zerolog.Nop(), keychain.WithIterations(1000)), st
}

func TestCreateOpen(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	kc, err := svc.Create(ctx, password)
	require.NoError(t, err)
	require.NoError(t, kc.Set("www.stanford.edu", "sunetpassword"))
	_, err = svc.Save(kc)
	require.NoError(t, err)
	kc.Close()

	opened, err := svc.Open(ctx, password, "")
	require.NoError(t, err)
	defer opened.Close()

	got, ok, err := opened.Get("www.stanford.edu")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sunetpassword", got)
}

func TestCreate_Policy(t *testing.T) {
	svc, _ := newService(t)

	for _, pw := range []string{"", "        ", "short"} {
		_, err := svc.Create(context.Background(), pw)
		assert.ErrorIs(t, err, vault.ErrWeakPassword, pw)
	}
}

func TestCreate_RefusesOverwrite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	kc, err := svc.Create(ctx, password)
	require.NoError(t, err)
	kc.Close()

	_, err = svc.Create(ctx, password)
	assert.ErrorIs(t, err, vault.ErrVaultExists)
}

func TestOpen_NotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Open(context.Background(), password, "")
	assert.ErrorIs(t, err, vault.ErrVaultNotFound)
	_, err = svc.Verify("")
	assert.ErrorIs(t, err, vault.ErrVaultNotFound)
}

func TestOpen_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	kc, err := svc.Create(ctx, password)
	require.NoError(t, err)
	kc.Close()

	_, err = svc.Open(ctx, "wrong password", "")
	assert.ErrorIs(t, err, keychain.ErrAuthentication)
}

func TestOpen_PinnedDigestRejectsRollback(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)

	kc, err := svc.Create(ctx, password)
	require.NoError(t, err)
	defer kc.Close()
	require.NoError(t, kc.Set("bank.com", "old"))
	old, err := svc.Save(kc)
	require.NoError(t, err)

	require.NoError(t, kc.Set("bank.com", "new"))
	current, err := svc.Save(kc)
	require.NoError(t, err)

	// An attacker restores the old snapshot, digest file included.
	require.NoError(t, st.SaveSnapshot(old))

	_, err = svc.Open(ctx, password, current.Digest)
	assert.ErrorIs(t, err, keychain.ErrIntegrity)
	_, err = svc.Verify(current.Digest)
	assert.ErrorIs(t, err, keychain.ErrIntegrity)

	// Without a pinned digest the stale but self-consistent snapshot opens.
	stale, err := svc.Open(ctx, password, "")
	require.NoError(t, err)
	defer stale.Close()
	got, _, err := stale.Get("bank.com")
	require.NoError(t, err)
	assert.Equal(t, "old", got)
}

func TestOpen_TamperedFile(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)

	kc, err := svc.Create(ctx, password)
	require.NoError(t, err)
	defer kc.Close()
	snap, err := svc.Save(kc)
	require.NoError(t, err)

	snap.Repr = string(bytes.Replace([]byte(snap.Repr), []byte(`"entries":{}`), []byte(`"entries": {}`), 1))
	require.NoError(t, st.SaveSnapshot(snap))

	_, err = svc.Open(ctx, password, "")
	assert.ErrorIs(t, err, keychain.ErrIntegrity)
	_, err = svc.Verify("")
	assert.ErrorIs(t, err, keychain.ErrIntegrity)
}

func TestOpen_MissingDigest(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)

	kc, err := svc.Create(ctx, password)
	require.NoError(t, err)
	defer kc.Close()
	snap, err := svc.Save(kc)
	require.NoError(t, err)

	require.NoError(t, st.SaveSnapshot(domain.Snapshot{Repr: snap.Repr}))
	_, err = svc.Open(ctx, password, "")
	assert.ErrorIs(t, err, keychain.ErrIntegrity)

	opened, err := svc.Open(ctx, password, snap.Digest)
	require.NoError(t, err)
	opened.Close()
}

func TestVerify_OK(t *testing.T) {
	svc, _ := newService(t)

	kc, err := svc.Create(context.Background(), password)
	require.NoError(t, err)
	defer kc.Close()
	saved, err := svc.Save(kc)
	require.NoError(t, err)

	snap, err := svc.Verify("")
	require.NoError(t, err)
	assert.Equal(t, saved, snap)
}

func TestCreate_RefusesExistingFile(t *testing.T) {
	svc, st := newService(t)

	// Any vault file blocks Create, even one that would not parse.
	require.NoError(t, st.SaveSnapshot(domain.Snapshot{Repr: "garbage"}))

	_, err := svc.Create(context.Background(), password)
	assert.ErrorIs(t, err, vault.ErrVaultExists)

	snap, ok, err := st.LoadSnapshot()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "garbage", snap.Repr)
}
