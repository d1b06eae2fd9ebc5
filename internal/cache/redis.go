package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "smart-trip:cache:"

// RedisStore is a Store backed by Redis, for deployments that want the
// external-data cache shared across replicas. Redis handles expiry
// itself, so Cleanup is a no-op and Stats never reports expired entries.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the payload for key if present and unexpired.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores payload under key for ttl.
func (s *RedisStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	// Errors are intentionally swallowed: a cache write failure just
	// means the next lookup re-fetches.
	s.client.Set(ctx, redisKeyPrefix+key, payload, ttl)
}

// Stats reports per-category entry counts via a prefix scan.
func (s *RedisStore) Stats(ctx context.Context) Stats {
	stats := Stats{Categories: make(map[string]int)}

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()[len(redisKeyPrefix):]
		stats.Total++
		stats.Categories[category(key)]++
	}
	return stats
}

// Cleanup is a no-op; Redis evicts expired keys on its own.
func (s *RedisStore) Cleanup(context.Context) int {
	return 0
}

// Clear removes all entries under the cache prefix.
func (s *RedisStore) Clear(ctx context.Context) {
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		s.client.Del(ctx, keys...)
	}
}
