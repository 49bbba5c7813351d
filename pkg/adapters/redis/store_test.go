package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/waypoint/pkg/adapters/redis"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunStateStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("app:"))
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "h1", &domain.BackStackSnapshot{
		Entries: []domain.EntrySnapshot{{ID: "e1", Route: "home"}},
	}))

	assert.True(t, mr.Exists("app:h1"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"h1"))
}

func TestRedisStore_NumericArgsDecodeAsNumbers(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "h1", &domain.BackStackSnapshot{
		Entries: []domain.EntrySnapshot{{ID: "e1", Route: "profile", Args: map[string]any{"id": 7}}},
	}))

	loaded, err := store.Load(ctx, "h1")
	require.NoError(t, err)
	assert.EqualValues(t, 7, loaded.Entries[0].Args["id"])
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, mr.Set(redis.DefaultPrefix+"broken", "{not json"))

	_, err := store.Load(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	hostID := "host-ttl"
	snapshot := &domain.BackStackSnapshot{
		Entries: []domain.EntrySnapshot{{ID: "e1", Route: "home"}},
	}

	require.NoError(t, store.Save(ctx, hostID, snapshot))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, hostID)

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, hostID)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// The index is pruned against the wall clock, not miniredis time.
	time.Sleep(1200 * time.Millisecond)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
