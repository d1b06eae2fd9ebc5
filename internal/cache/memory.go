package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	createdAt time.Time
	expiresAt time.Time
}

// MemoryStore is an in-process Store backed by a mutex-protected map.
// Expired entries are evicted lazily on lookup; Cleanup exists for
// callers that want to reclaim memory proactively.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the payload for key if a valid entry exists. An expired
// entry is deleted and reported as a miss.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !s.now().Before(entry.expiresAt) {
		// Lazy eviction. Re-check under the write lock in case a
		// concurrent Set replaced the entry.
		s.mu.Lock()
		if current, stillThere := s.entries[key]; stillThere && !s.now().Before(current.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return entry.payload, true
}

// Set stores payload under key for ttl.
func (s *MemoryStore) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	now := s.now()
	s.mu.Lock()
	s.entries[key] = memoryEntry{
		payload:   payload,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	s.mu.Unlock()
}

// Stats reports per-category entry counts and the expired count.
func (s *MemoryStore) Stats(_ context.Context) Stats {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Categories: make(map[string]int)}
	for key, entry := range s.entries {
		stats.Total++
		stats.Categories[category(key)]++
		if !now.Before(entry.expiresAt) {
			stats.Expired++
		}
	}
	return stats
}

// Cleanup evicts all expired entries and returns how many were removed.
func (s *MemoryStore) Cleanup(_ context.Context) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Clear removes all entries.
func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
}
