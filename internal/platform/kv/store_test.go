package kv

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client)
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type doc struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	require.NoError(t, store.Set(ctx, "luna:test", doc{Name: "acme", Value: 12.5}))

	var got doc
	found, err := store.Get(ctx, "luna:test", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "acme", got.Name)
	assert.Equal(t, 12.5, got.Value)
}

func TestStoreGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var got map[string]any
	found, err := store.Get(context.Background(), "luna:absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestStoreRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "luna:gone", "x"))
	require.NoError(t, store.Remove(ctx, "luna:gone", "luna:never-there"))

	var got string
	found, err := store.Get(ctx, "luna:gone", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Removing nothing is a no-op.
	require.NoError(t, store.Remove(ctx))
}
