package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/waypoint/pkg/adapters/memory"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/persistence/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPIIMiddleware_Masking(t *testing.T) {
	underlying := memory.NewStore()
	mw, err := middleware.NewPIIMiddleware([]string{"password", "ssn"})
	require.NoError(t, err)
	secure := mw(underlying)

	ctx := context.Background()
	snap := &domain.BackStackSnapshot{Entries: []domain.EntrySnapshot{{
		ID:    "e1",
		Route: "signup",
		Args: map[string]any{
			"username":      "jdoe",
			"user_password": "secret123",
			"details":       map[string]any{"address": "123 St", "ssn_number": "999-99-9999"},
		},
	}}}

	require.NoError(t, secure.Save(ctx, "pii", snap))

	// The caller's snapshot is untouched.
	assert.Equal(t, "secret123", snap.Entries[0].Args["user_password"])
	assert.Equal(t, "999-99-9999", snap.Entries[0].Args["details"].(map[string]any)["ssn_number"])

	stored, err := secure.Load(ctx, "pii")
	require.NoError(t, err)
	args := stored.Entries[0].Args
	assert.Equal(t, "jdoe", args["username"])
	assert.Equal(t, middleware.Mask, args["user_password"])
	assert.Equal(t, middleware.Mask, args["details"].(map[string]any)["ssn_number"])
	assert.Equal(t, "123 St", args["details"].(map[string]any)["address"])
}

func TestPIIMiddleware_InvalidPattern(t *testing.T) {
	_, err := middleware.NewPIIMiddleware([]string{"("})
	assert.Error(t, err)
}

func TestChain_Order(t *testing.T) {
	underlying := memory.NewStore()
	enc, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: make([]byte, 32)})
	require.NoError(t, err)
	pii, err := middleware.NewPIIMiddleware([]string{"token"})
	require.NoError(t, err)

	// Masking runs before sealing.
	store := middleware.Chain(underlying, pii, enc)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "c", &domain.BackStackSnapshot{Entries: []domain.EntrySnapshot{
		{ID: "e1", Route: "home", Args: map[string]any{"token": "abc"}},
	}}))

	raw, err := underlying.Load(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, middleware.EnvelopeRoute, raw.Entries[0].Route)

	loaded, err := store.Load(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, middleware.Mask, loaded.Entries[0].Args["token"])
}
