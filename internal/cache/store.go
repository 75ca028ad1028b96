package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotStore persists the last-known JSON snapshot of a collection view
// under a versioned string key (e.g. "athletes_cache_v1",
// "ath_prog_results_v9:<athleteId>"). The store is best-effort and never
// authoritative: a failed read degrades to a miss plus the error, and callers
// are expected to fall through to the live source.
type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

const keyPrefix = "snap:"

// Status distinguishes a hit from the two degraded outcomes so callers can
// surface degraded state instead of failing invisibly.
type Status int

const (
	Hit Status = iota
	Miss
	Failed
)

// Result is the outcome of a snapshot read.
type Result struct {
	Status Status
	Err    error
}

func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SnapshotStore{client: client, ttl: ttl}
}

// Get reads the snapshot under key into dst.
func (s *SnapshotStore) Get(ctx context.Context, key string, dst interface{}) Result {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return Result{Status: Miss}
	}
	if err != nil {
		return Result{Status: Failed, Err: fmt.Errorf("snapshot get %s: %w", key, err)}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// A corrupt snapshot is treated as absent.
		return Result{Status: Failed, Err: fmt.Errorf("snapshot decode %s: %w", key, err)}
	}

	return Result{Status: Hit}
}

// Put serializes v under key, refreshing the TTL.
func (s *SnapshotStore) Put(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("snapshot marshal %s: %w", key, err)
	}

	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("snapshot put %s: %w", key, err)
	}

	return nil
}

// Invalidate drops a snapshot. Used when a collection is known to have
// changed shape (e.g. after a bulk import).
func (s *SnapshotStore) Invalidate(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
