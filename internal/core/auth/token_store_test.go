package auth

import (
	"context"
	"testing"

	"parts-admin/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *TokenStore {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewTokenStore(adapter)
}

// TestTokenStore_SetGet verifies the store/retrieve cycle.
func TestTokenStore_SetGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Set(ctx, "admin-token-abc")
	require.NoError(t, err)

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-token-abc", token)
	assert.Equal(t, "admin-token-abc", store.Token())
}

// TestTokenStore_GetAbsent verifies that a missing token reads as empty, not as an error.
func TestTokenStore_GetAbsent(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, store.Token())
}

// TestTokenStore_Clear verifies that Clear removes the token.
func TestTokenStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short-lived"))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

// TestTokenStore_SetEmpty verifies that blank tokens are rejected.
func TestTokenStore_SetEmpty(t *testing.T) {
	store := newTestStore(t)

	err := store.Set(context.Background(), "   ")
	assert.Error(t, err)
}
