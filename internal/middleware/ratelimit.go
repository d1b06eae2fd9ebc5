package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/benvon/smart-trip/internal/request"
)

const defaultRatePerMinute = 100

// RateLimit returns per-client-IP rate limiting middleware. With a
// Redis client the limiter state is shared across instances; without
// one it falls back to an in-process store.
func RateLimit(ratePerMinute int, redisClient *redis.Client) (func(http.Handler) http.Handler, error) {
	if ratePerMinute <= 0 {
		ratePerMinute = defaultRatePerMinute
	}

	rate := limiter.Rate{
		Period: time.Minute,
		Limit:  int64(ratePerMinute),
	}

	var store limiter.Store
	if redisClient != nil {
		redisStore, err := redisstore.NewStore(redisClient)
		if err != nil {
			return nil, fmt.Errorf("create redis rate limit store: %w", err)
		}
		store = redisStore
	} else {
		store = memorystore.NewStore()
	}

	instance := limiter.New(store, rate)
	keyGetter := func(r *http.Request) string {
		return request.ClientIP(r)
	}
	mw := stdlibmw.NewMiddleware(instance, stdlibmw.WithKeyGetter(keyGetter))
	return mw.Handler, nil
}
