package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKey = "dashboard:reports:snapshot"

// RedisStore keeps the snapshot in Redis with a TTL, so a long outage
// eventually serves "no reports" instead of arbitrarily old data.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis creates a Redis-backed store.
func NewRedis(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Save replaces the stored snapshot.
func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey, raw, s.ttl).Err()
}

// Load returns the stored snapshot, or ok=false when none exists.
func (s *RedisStore) Load(ctx context.Context) (Snapshot, bool, error) {
	raw, err := s.rdb.Get(ctx, redisKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}
