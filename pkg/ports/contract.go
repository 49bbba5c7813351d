package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore implementation
// adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	hostID := "contract-test-host-" + time.Now().Format("20060102150405")

	snapshot := func() *domain.BackStackSnapshot {
		return &domain.BackStackSnapshot{
			Entries: []domain.EntrySnapshot{
				{
					ID:    "entry-1",
					Route: "home",
					SavedState: map[string][]byte{
						"waypoint.result:profile@string": []byte("payload"),
					},
				},
				{
					ID:    "entry-2",
					Route: "profile",
					Args:  map[string]any{"name": "ada"},
				},
			},
			CapturedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, hostID, snapshot())
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, hostID)
		require.NoError(t, err, "Load should not return error")
		require.Len(t, loaded.Entries, 2)
		assert.Equal(t, "home", loaded.Entries[0].Route)
		assert.Equal(t, "profile", loaded.Entries[1].Route)
		assert.Equal(t, "ada", loaded.Entries[1].Args["name"])
		// Pending results must survive byte for byte.
		assert.Equal(t, []byte("payload"), loaded.Entries[0].SavedState["waypoint.result:profile@string"])
	})

	t.Run("Save Isolates Caller", func(t *testing.T) {
		snap := snapshot()
		require.NoError(t, store.Save(ctx, hostID, snap))

		snap.Entries[0].SavedState["waypoint.result:profile@string"][0] = 'X'
		snap.Entries[0].Route = "mutated"

		loaded, err := store.Load(ctx, hostID)
		require.NoError(t, err)
		assert.Equal(t, "home", loaded.Entries[0].Route)
		assert.Equal(t, []byte("payload"), loaded.Entries[0].SavedState["waypoint.result:profile@string"])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+hostID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, hostID, snapshot())
		require.NoError(t, err)

		err = store.Delete(ctx, hostID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, hostID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := hostID + "-1"
		id2 := hostID + "-2"
		_ = store.Save(ctx, id1, snapshot())
		_ = store.Save(ctx, id2, snapshot())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
