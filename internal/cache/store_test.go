package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*SnapshotStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSnapshotStore(client, time.Hour), mr
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	in := []string{"a", "b", "c"}
	require.NoError(t, store.Put(ctx, "athletes_cache_v1", in))

	var out []string
	res := store.Get(ctx, "athletes_cache_v1", &out)
	assert.Equal(t, Hit, res.Status)
	assert.Equal(t, in, out)
}

func TestSnapshotStoreMiss(t *testing.T) {
	store, _ := setupStore(t)

	var out []string
	res := store.Get(context.Background(), "nothing_here_v1", &out)
	assert.Equal(t, Miss, res.Status)
	assert.NoError(t, res.Err)
}

func TestSnapshotStoreCorruptPayload(t *testing.T) {
	store, mr := setupStore(t)

	require.NoError(t, mr.Set("snap:broken_v1", "{not json"))

	var out map[string]string
	res := store.Get(context.Background(), "broken_v1", &out)
	assert.Equal(t, Failed, res.Status)
	assert.Error(t, res.Err)
}

func TestSnapshotStoreInvalidate(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", 42))
	require.NoError(t, store.Invalidate(ctx, "k"))

	var out int
	res := store.Get(ctx, "k", &out)
	assert.Equal(t, Miss, res.Status)
}
