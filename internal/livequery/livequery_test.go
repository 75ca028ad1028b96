package livequery

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubnatacion/swimclub-backend/internal/cache"
)

type fakeSource struct {
	docs chan []Document
	errs chan error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		docs: make(chan []Document, 4),
		errs: make(chan error, 1),
	}
}

func (f *fakeSource) Watch(ctx context.Context) (<-chan []Document, <-chan error) {
	return f.docs, f.errs
}

func doc(id, payload string) Document {
	return Document{ID: id, Data: json.RawMessage(payload)}
}

func setupQuery(t *testing.T, key string, src DocumentSource) (*Query, *cache.SnapshotStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cache.NewSnapshotStore(client, time.Hour)
	return &Query{Key: key, Source: src, Store: store, RetryDelay: 10 * time.Millisecond}, store
}

func recv(t *testing.T, ch <-chan Update) Update {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		return Update{}
	}
}

func TestCacheHydrationThenServerWins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := newFakeSource()
	q, store := setupQuery(t, "ath_prog_results_v9:ath-1", src)

	// Seed a previous-session snapshot (state A).
	stale := []Document{doc("r1", `{"timeMs":81000}`)}
	require.NoError(t, store.Put(ctx, q.Key, stale))

	updates := q.Run(ctx)

	first := recv(t, updates)
	assert.Equal(t, SourceCache, first.Source)
	assert.Equal(t, stale, first.Docs)

	// Live payload B fully replaces A.
	fresh := []Document{doc("r1", `{"timeMs":80550}`), doc("r2", `{"timeMs":79900}`)}
	src.docs <- fresh

	second := recv(t, updates)
	assert.Equal(t, SourceServer, second.Source)
	assert.Equal(t, fresh, second.Docs)

	// The re-persisted snapshot equals B, not a merge of A and B.
	assert.Eventually(t, func() bool {
		var persisted []Document
		res := store.Get(ctx, q.Key, &persisted)
		return res.Status == cache.Hit && len(persisted) == 2 && persisted[1].ID == "r2"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNoCacheSnapshotSkipsHydration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := newFakeSource()
	q, _ := setupQuery(t, "athletes_cache_v1", src)

	updates := q.Run(ctx)

	fresh := []Document{doc("a1", `{"name":"Ana"}`)}
	src.docs <- fresh

	first := recv(t, updates)
	assert.Equal(t, SourceServer, first.Source)
	assert.Equal(t, fresh, first.Docs)
}

func TestWatchErrorIsSurfacedAndWatchReopens(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := newFakeSource()
	q, _ := setupQuery(t, "events_cache_v1", src)

	updates := q.Run(ctx)

	src.errs <- errors.New("listen failed")

	u := recv(t, updates)
	require.Error(t, u.Err)

	// After the retry delay the same source is watched again and data flows.
	src.docs <- []Document{doc("e1", `{"status":"abierto"}`)}
	u = recv(t, updates)
	require.NoError(t, u.Err)
	assert.Len(t, u.Docs, 1)
}

func TestRunClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	src := newFakeSource()
	q, _ := setupQuery(t, "groups_cache_v1", src)

	updates := q.Run(ctx)
	cancel()

	select {
	case _, ok := <-updates:
		if ok {
			// Drain a possible in-flight update, then expect close.
			_, ok = <-updates
			assert.False(t, ok)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close on cancel")
	}
}
