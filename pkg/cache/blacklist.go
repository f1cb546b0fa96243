// Package cache holds in-process fallbacks for state normally kept in Redis.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Blacklist is an in-memory token blacklist used when Redis is unavailable.
// Entries expire with their token, so memory stays bounded by live sessions.
type Blacklist struct {
	items *gocache.Cache
}

// NewBlacklist creates a blacklist purging expired entries every cleanup interval.
func NewBlacklist(cleanup time.Duration) *Blacklist {
	return &Blacklist{items: gocache.New(gocache.NoExpiration, cleanup)}
}

// BlacklistToken revokes jti for ttl.
func (b *Blacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.items.Set(jti, struct{}{}, ttl)
	return nil
}

// IsBlacklisted reports whether jti is revoked.
func (b *Blacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	_, found := b.items.Get(jti)
	return found, nil
}
