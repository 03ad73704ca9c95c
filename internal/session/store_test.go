package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	username, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestMemoryStore_UniqueIDs(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	first, err := store.Create(ctx, "alice")
	require.NoError(t, err)
	second, err := store.Create(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Destroy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	// Negative TTL makes every session born expired
	store := NewMemoryStore(-time.Second)
	ctx := context.Background()

	id, err := store.Create(ctx, "alice")
	require.NoError(t, err)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
