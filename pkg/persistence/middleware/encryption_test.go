package middleware_test

import (
	"context"
	"crypto/rand"
	"io"
	"testing"
	"time"

	"github.com/aretw0/waypoint/pkg/adapters/memory"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/persistence/middleware"
	"github.com/aretw0/waypoint/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, 32)
	_, err := io.ReadFull(rand.Reader, k)
	require.NoError(t, err)
	return k
}

func snapshot() *domain.BackStackSnapshot {
	return &domain.BackStackSnapshot{
		CapturedAt: time.Now().UTC().Truncate(time.Second),
		Entries: []domain.EntrySnapshot{
			{ID: "e1", Route: "home", SavedState: map[string][]byte{"profile#string": []byte("secret result")}},
			{ID: "e2", Route: "profile", Args: map[string]any{"name": "ada"}},
		},
	}
}

func TestEncryptionMiddleware_Contract(t *testing.T) {
	mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	require.NoError(t, err)
	ports.RunStateStoreContract(t, mw(memory.NewStore()))
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	underlying := memory.NewStore()
	mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	require.NoError(t, err)
	secure := mw(underlying)

	ctx := context.Background()
	require.NoError(t, secure.Save(ctx, "h1", snapshot()))

	stored, err := underlying.Load(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, stored.Entries, 1)
	assert.Equal(t, middleware.EnvelopeRoute, stored.Entries[0].Route)
	assert.Nil(t, stored.Entries[0].Args)
	assert.NotContains(t, string(stored.Entries[0].SavedState["__encrypted__"]), "secret result")

	loaded, err := secure.Load(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 2)
	assert.Equal(t, "profile", loaded.Entries[1].Route)
	assert.Equal(t, "ada", loaded.Entries[1].Args["name"])
	assert.Equal(t, []byte("secret result"), loaded.Entries[0].SavedState["profile#string"])

	ids, err := secure.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"h1"}, ids)
	require.NoError(t, secure.Delete(ctx, "h1"))
	_, err = underlying.Load(ctx, "h1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	underlying := memory.NewStore()
	oldKey, newKey := generateKey(t), generateKey(t)
	ctx := context.Background()

	mwOld, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})
	require.NoError(t, err)
	storeOld := mwOld(underlying)
	require.NoError(t, storeOld.Save(ctx, "rot", snapshot()))

	mwNew, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})
	require.NoError(t, err)
	storeNew := mwNew(underlying)

	loaded, err := storeNew.Load(ctx, "rot")
	require.NoError(t, err, "fallback key should decrypt")
	require.NoError(t, storeNew.Save(ctx, "rot", loaded))

	_, err = storeOld.Load(ctx, "rot")
	assert.Error(t, err, "old key alone cannot read a snapshot sealed with the new key")
}

func TestEncryptionMiddleware_PlainSnapshot(t *testing.T) {
	underlying := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, underlying.Save(ctx, "plain", snapshot()))

	mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	require.NoError(t, err)
	_, err = mw(underlying).Load(ctx, "plain")
	assert.ErrorIs(t, err, middleware.ErrNotEncrypted)
}

func TestEncryptionMiddleware_InvalidKey(t *testing.T) {
	_, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short-key")})
	assert.Error(t, err)
}
