package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, FavoritesKey)
	assert.Equal(t, ErrKeyNotFound, err)

	require.NoError(t, store.Set(ctx, FavoritesKey, `[{"id":3}]`))

	val, err := store.Get(ctx, FavoritesKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":3}]`, val)

	require.NoError(t, store.Remove(ctx, FavoritesKey))
	_, err = store.Get(ctx, FavoritesKey)
	assert.Equal(t, ErrKeyNotFound, err)

	require.NoError(t, store.Remove(ctx, FavoritesKey))
}
