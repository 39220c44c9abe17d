// Package cache implements the redis-backed result cache. Cache
// failures never fail the primary request: every error degrades to a
// miss or is swallowed after logging.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"talent-marketplace-backend/internal/domain"
	"talent-marketplace-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
}

// New wraps a go-redis client. A nil client yields an always-miss
// cache so callers need no nil checks.
func New(client *redis.Client) domain.Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("cache get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Log.Warn("cache entry corrupt, treating as miss", "key", key, "error", err)
		return false
	}
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.Log.Warn("cache set skipped, value not serializable", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Log.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *redisCache) Del(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
