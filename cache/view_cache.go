// Package cache provides a redis-backed cache for public view responses.
// Mutating handlers invalidate the affected paths so the marketing site
// refetches fresh data; without a configured redis the cache is a no-op.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/config"
)

const keyPrefix = "view:"

type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New builds a ViewCache from configuration. REDIS_ADDR empty means caching
// (and the invalidation signal) is disabled.
func New(cfg map[string]string) *ViewCache {
	addr := config.GetString(cfg, "REDIS_ADDR", "")
	if addr == "" {
		return &ViewCache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetString(cfg, "REDIS_PASSWORD", ""),
		DB:       config.GetInt(cfg, "REDIS_DB", 0),
	})

	ttl := time.Duration(config.GetInt(cfg, "VIEW_CACHE_TTL_SECONDS", 300)) * time.Second
	return &ViewCache{rdb: rdb, ttl: ttl}
}

// Enabled reports whether a redis backend is configured.
func (c *ViewCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Get returns the cached payload for a view key, if present.
func (c *ViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("view cache read failed")
		}
		return nil, false
	}
	return payload, true
}

// Set stores a view payload under the key for the configured TTL.
func (c *ViewCache) Set(ctx context.Context, key string, payload []byte) {
	if !c.Enabled() {
		return
	}

	if err := c.rdb.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("view cache write failed")
	}
}

// Invalidate marks every cached view under the given path prefixes stale.
// Failures are logged only; a stale cache entry expires on its own TTL.
func (c *ViewCache) Invalidate(ctx context.Context, prefixes ...string) {
	if !c.Enabled() {
		return
	}

	for _, prefix := range prefixes {
		iter := c.rdb.Scan(ctx, 0, keyPrefix+prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				log.Warn().Err(err).Str("key", iter.Val()).Msg("view cache invalidation failed")
			}
		}
		if err := iter.Err(); err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("view cache scan failed")
		}
	}
}
