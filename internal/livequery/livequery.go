// Package livequery implements the cache-then-live-subscription pattern:
// hydrate instantly from the last persisted snapshot, then attach a live
// watch on the remote collection, fully replacing state and re-persisting the
// snapshot on every change. The last update always wins; nothing is merged.
package livequery

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/clubnatacion/swimclub-backend/internal/cache"
)

// Source tells a consumer whether an update came from the local snapshot or
// from the live watch.
type Source string

const (
	SourceCache  Source = "cache"
	SourceServer Source = "server"
)

// Document is one remote document with its id, as carried through snapshots.
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Update is one event on the stream. Err is set for watch failures; the
// previous Docs remain valid in that case.
type Update struct {
	Source Source
	Docs   []Document
	Err    error
}

// DocumentSource is a standing watch over a remote collection query. Every
// send on the documents channel carries the full current result set.
type DocumentSource interface {
	Watch(ctx context.Context) (<-chan []Document, <-chan error)
}

// Query binds a cache key to a document source.
type Query struct {
	Key    string
	Source DocumentSource
	Store  *cache.SnapshotStore

	// RetryDelay is how long to wait before re-opening a failed watch.
	RetryDelay time.Duration
}

// Run starts the query. The returned channel emits at most one cache
// hydration event followed by one event per remote change, and closes when
// ctx is cancelled.
func (q *Query) Run(ctx context.Context) <-chan Update {
	out := make(chan Update, 1)

	retry := q.RetryDelay
	if retry <= 0 {
		retry = 5 * time.Second
	}

	go func() {
		defer close(out)

		q.hydrate(ctx, out)

		for {
			if !q.watch(ctx, out) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(retry):
			}
		}
	}()

	return out
}

func (q *Query) hydrate(ctx context.Context, out chan<- Update) {
	if q.Store == nil {
		return
	}

	var docs []Document
	res := q.Store.Get(ctx, q.Key, &docs)
	switch res.Status {
	case cache.Hit:
		select {
		case out <- Update{Source: SourceCache, Docs: docs}:
		case <-ctx.Done():
		}
	case cache.Failed:
		log.Printf("[warn] operation=livequery.hydrate key=%s error=%v", q.Key, res.Err)
	}
}

// watch consumes one watch session. It returns true if the session failed and
// should be re-opened, false if ctx ended.
func (q *Query) watch(ctx context.Context, out chan<- Update) bool {
	docsCh, errCh := q.Source.Watch(ctx)

	for {
		select {
		case <-ctx.Done():
			return false

		case docs, ok := <-docsCh:
			if !ok {
				return true
			}
			select {
			case out <- Update{Source: SourceServer, Docs: docs}:
			case <-ctx.Done():
				return false
			}
			q.persist(ctx, docs)

		case err, ok := <-errCh:
			if !ok {
				return true
			}
			select {
			case out <- Update{Source: SourceServer, Err: err}:
			case <-ctx.Done():
				return false
			}
			return true
		}
	}
}

func (q *Query) persist(ctx context.Context, docs []Document) {
	if q.Store == nil {
		return
	}
	if err := q.Store.Put(ctx, q.Key, docs); err != nil {
		// The snapshot is best-effort; the stream keeps going.
		log.Printf("[warn] operation=livequery.persist key=%s error=%v", q.Key, err)
	}
}
