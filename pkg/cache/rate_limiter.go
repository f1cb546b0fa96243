package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// RateLimiter is a fixed-window in-memory limiter used when Redis is
// unavailable. Counts are per process.
type RateLimiter struct {
	mu    sync.Mutex
	items *gocache.Cache
}

// NewRateLimiter creates a limiter purging expired windows every cleanup interval.
func NewRateLimiter(cleanup time.Duration) *RateLimiter {
	return &RateLimiter{items: gocache.New(gocache.NoExpiration, cleanup)}
}

// CheckRateLimit counts one hit on key and reports whether it is within limit.
func (l *RateLimiter) CheckRateLimit(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.items.Add(key, 1, window); err == nil {
		return limit >= 1, nil
	}
	n, err := l.items.IncrementInt(key, 1)
	if err != nil {
		// window expired between Add and Increment
		l.items.Set(key, 1, window)
		return limit >= 1, nil
	}
	return n <= limit, nil
}
