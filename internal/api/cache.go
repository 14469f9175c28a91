// internal/api/cache.go
package api

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"hoopmatch/internal/common/config"
	"hoopmatch/internal/common/database"
	"hoopmatch/internal/common/logger"
)

// ResultsCache stores serialized match responses in Redis, keyed by a
// hash of the normalized request. A nil cache is a valid no-op cache,
// so callers never branch on whether caching is configured.
type ResultsCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	prefix string
	logger logger.Logger
}

// NewResultsCache returns nil when caching is disabled or Redis is not
// available; every method tolerates the nil receiver.
func NewResultsCache(cfg config.CacheConfig, rdb *database.RedisClient, log logger.Logger) *ResultsCache {
	if !cfg.Enabled || rdb == nil {
		return nil
	}
	return &ResultsCache{
		redis:  rdb,
		ttl:    time.Duration(cfg.TTL) * time.Second,
		prefix: cfg.Prefix,
		logger: log,
	}
}

// Key derives a deterministic cache key from the engine name and the
// decoded request payload.
func (c *ResultsCache) Key(engine string, payload interface{}) string {
	if c == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	h := fnv.New64a()
	h.Write([]byte(engine))
	h.Write([]byte{':'})
	h.Write(body)
	return fmt.Sprintf("%s%s:%x", c.prefix, engine, h.Sum64())
}

// Get loads a cached response into out. Misses and transport errors
// both report false; the cache never fails a request.
func (c *ResultsCache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil || key == "" {
		return false
	}
	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("results cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.logger.Warn("results cache entry is malformed, ignoring", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// Set stores a response under key with the configured TTL.
func (c *ResultsCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || key == "" {
		return
	}
	body, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, body, c.ttl); err != nil {
		c.logger.Warn("results cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
