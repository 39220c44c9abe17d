package domain

import (
	"context"
	"time"
)

// Cache is the short-TTL result cache. Implementations must never fail
// the caller: a broken backend behaves as an always-miss cache.
type Cache interface {
	// Get unmarshals the cached value into dest and reports a hit.
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Del(ctx context.Context, keys ...string)
}

// Cache keys invalidated by write-path interactions.
func DashboardCacheKey(recruiterID string) string {
	return "dashboard_talent_" + recruiterID
}

func RecommendationCacheKey(recruiterID string) string {
	return "recommended_talents_" + recruiterID
}
