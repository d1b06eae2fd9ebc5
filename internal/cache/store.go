// Package cache provides the TTL cache used by the external data
// client. Entries are opaque JSON payloads; a key's category is the
// segment before the first colon (e.g. "weather" in "weather:28.54,-81.38").
package cache

import (
	"context"
	"time"
)

// Stats describes the current contents of a store.
type Stats struct {
	Total      int            `json:"total"`
	Expired    int            `json:"expired"`
	Categories map[string]int `json:"categories"`
}

// Store is a TTL key/value store. An entry is valid iff the current
// time is before its expiry; expired entries behave as misses.
type Store interface {
	// Get returns the payload for key and whether a valid entry exists.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores payload under key for ttl.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)

	// Stats reports entry counts per category and the number of
	// expired-but-not-yet-evicted entries.
	Stats(ctx context.Context) Stats

	// Cleanup evicts expired entries and returns how many were removed.
	Cleanup(ctx context.Context) int

	// Clear removes all entries. Intended for test isolation and ops.
	Clear(ctx context.Context)
}

// category extracts the key's category prefix.
func category(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}
