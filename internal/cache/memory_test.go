package cache

import (
	"context"
	"testing"
	"time"
)

// fixedClock lets tests move time forward deterministically.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*MemoryStore, *fixedClock) {
	clock := &fixedClock{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = clock.now
	return store, clock
}

func TestMemoryStore_SetGet(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore()
	ctx := context.Background()

	store.Set(ctx, "weather:1.00,2.00", []byte(`{"ok":true}`), time.Hour)

	payload, ok := store.Get(ctx, "weather:1.00,2.00")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(payload) != `{"ok":true}` {
		t.Errorf("unexpected payload: %s", payload)
	}

	if _, ok := store.Get(ctx, "weather:9.00,9.00"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryStore_ExpiryIsLazy(t *testing.T) {
	t.Parallel()

	store, clock := newTestStore()
	ctx := context.Background()

	store.Set(ctx, "holidays:US:2026", []byte(`[]`), time.Minute)

	clock.advance(time.Minute) // exactly at expiry counts as expired

	if _, ok := store.Get(ctx, "holidays:US:2026"); ok {
		t.Fatal("expected expired entry to be a miss")
	}

	// The expired entry was evicted by the Get.
	stats := store.Stats(ctx)
	if stats.Total != 0 {
		t.Errorf("expected 0 entries after lazy eviction, got %d", stats.Total)
	}
}

func TestMemoryStore_SetRefreshesExpiry(t *testing.T) {
	t.Parallel()

	store, clock := newTestStore()
	ctx := context.Background()

	store.Set(ctx, "country:france", []byte(`1`), time.Minute)
	clock.advance(50 * time.Second)
	store.Set(ctx, "country:france", []byte(`2`), time.Minute)
	clock.advance(30 * time.Second)

	payload, ok := store.Get(ctx, "country:france")
	if !ok {
		t.Fatal("expected hit after refresh")
	}
	if string(payload) != "2" {
		t.Errorf("expected refreshed payload, got %s", payload)
	}
}

func TestMemoryStore_Stats(t *testing.T) {
	t.Parallel()

	store, clock := newTestStore()
	ctx := context.Background()

	store.Set(ctx, "weather:1.00,2.00", []byte(`a`), time.Minute)
	store.Set(ctx, "weather:3.00,4.00", []byte(`b`), time.Hour)
	store.Set(ctx, "holidays:FR:2026", []byte(`c`), time.Hour)

	clock.advance(2 * time.Minute)

	stats := store.Stats(ctx)
	if stats.Total != 3 {
		t.Errorf("expected 3 total entries, got %d", stats.Total)
	}
	if stats.Expired != 1 {
		t.Errorf("expected 1 expired entry, got %d", stats.Expired)
	}
	if stats.Categories["weather"] != 2 {
		t.Errorf("expected 2 weather entries, got %d", stats.Categories["weather"])
	}
	if stats.Categories["holidays"] != 1 {
		t.Errorf("expected 1 holidays entry, got %d", stats.Categories["holidays"])
	}
}

func TestMemoryStore_Cleanup(t *testing.T) {
	t.Parallel()

	store, clock := newTestStore()
	ctx := context.Background()

	store.Set(ctx, "weather:1.00,2.00", []byte(`a`), time.Minute)
	store.Set(ctx, "country:japan", []byte(`b`), time.Hour)

	clock.advance(5 * time.Minute)

	if removed := store.Cleanup(ctx); removed != 1 {
		t.Errorf("expected 1 entry removed, got %d", removed)
	}

	stats := store.Stats(ctx)
	if stats.Total != 1 || stats.Expired != 0 {
		t.Errorf("unexpected stats after cleanup: %+v", stats)
	}
}

func TestMemoryStore_Clear(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore()
	ctx := context.Background()

	store.Set(ctx, "weather:1.00,2.00", []byte(`a`), time.Hour)
	store.Set(ctx, "country:japan", []byte(`b`), time.Hour)

	store.Clear(ctx)

	if stats := store.Stats(ctx); stats.Total != 0 {
		t.Errorf("expected empty store after clear, got %d entries", stats.Total)
	}
}

func TestCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"weather:1.00,2.00", "weather"},
		{"holidays:US:2026", "holidays"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := category(tt.key); got != tt.want {
			t.Errorf("category(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
