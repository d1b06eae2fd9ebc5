// Package external fetches weather forecasts, public holidays, and
// country metadata from third-party APIs. Every operation follows the
// same contract: consult the cache, fetch on a miss with a bounded
// timeout, validate before caching, and degrade to "no data" (nil) on
// any failure. Nothing in this package ever returns an error to its
// caller; the data is nice to have, not essential.
package external

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/benvon/smart-trip/internal/cache"
	"go.uber.org/zap"
)

const (
	weatherTTL = 6 * time.Hour
	holidayTTL = 30 * 24 * time.Hour
	countryTTL = 7 * 24 * time.Hour

	defaultWeatherTimeout = 10 * time.Second
	defaultFetchTimeout   = 8 * time.Second

	// maxResponseBytes bounds how much of an upstream response we read.
	maxResponseBytes = 1 << 20
)

// Endpoints holds the base URLs of the three upstream APIs.
type Endpoints struct {
	Weather   string
	Holidays  string
	Countries string
}

// Client is the external data client. The cache is injected so tests
// and callers control its lifetime; there is no package-level state.
type Client struct {
	httpClient *http.Client
	cache      cache.Store
	endpoints  Endpoints
	logger     *zap.Logger

	// Per-operation fetch deadlines. A stalled upstream resolves to
	// "no data" once the deadline passes instead of holding the caller.
	weatherTimeout time.Duration
	fetchTimeout   time.Duration
}

// NewClient creates a client using the given cache store and endpoints.
func NewClient(store cache.Store, endpoints Endpoints, logger *zap.Logger) *Client {
	return &Client{
		// Per-operation deadlines come from context timeouts, so the
		// shared client carries none of its own.
		httpClient:     &http.Client{},
		cache:          store,
		endpoints:      endpoints,
		logger:         logger,
		weatherTimeout: defaultWeatherTimeout,
		fetchTimeout:   defaultFetchTimeout,
	}
}

// CacheStats exposes cache introspection for the ops endpoints.
func (c *Client) CacheStats(ctx context.Context) cache.Stats {
	return c.cache.Stats(ctx)
}

// CacheCleanup evicts expired cache entries.
func (c *Client) CacheCleanup(ctx context.Context) int {
	return c.cache.Cleanup(ctx)
}

// CacheClear empties the cache.
func (c *Client) CacheClear(ctx context.Context) {
	c.cache.Clear(ctx)
}

// fetchJSON issues a GET with a bounded timeout and returns the body
// for 2xx responses. notFound is true for a 404, which some callers
// cache as a stable fact.
func (c *Client) fetchJSON(ctx context.Context, url string, timeout time.Duration) (body []byte, notFound bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, true, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, &statusError{status: resp.StatusCode}
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, false, err
	}
	return body, false, nil
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return "unexpected status " + http.StatusText(e.status)
}

// cachedJSON looks up key and unmarshals the payload into out.
func (c *Client) cachedJSON(ctx context.Context, key string, out any) bool {
	payload, ok := c.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		// A corrupt entry is treated as a miss; the fetch will overwrite it.
		c.logger.Warn("cache_entry_corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// storeJSON marshals value and caches it under key for ttl.
func (c *Client) storeJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache_marshal_failed", zap.String("key", key), zap.Error(err))
		return
	}
	c.cache.Set(ctx, key, payload, ttl)
}
