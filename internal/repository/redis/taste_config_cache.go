package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"applianceReco/business/taste"
	"applianceReco/domain"
	"applianceReco/pkg/logger"
	"applianceReco/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// TasteConfigCache is a read-through cache in front of the postgres store.
// Cache trouble is logged and degraded around; the database stays the
// source of truth.
type TasteConfigCache struct {
	client *redis.Client
	inner  taste.TasteConfigStore
	ttl    time.Duration
}

var _ taste.TasteConfigStore = (*TasteConfigCache)(nil)

func NewTasteConfigCache(client *redis.Client, inner taste.TasteConfigStore, ttl time.Duration) *TasteConfigCache {
	return &TasteConfigCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
	}
}

func cacheKey(tasteID int) string {
	return fmt.Sprintf("taste:config:%d", tasteID)
}

func (c *TasteConfigCache) GetByTasteID(ctx context.Context, tasteID int) (*domain.TasteConfig, error) {
	key := cacheKey(tasteID)

	val, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var cfg domain.TasteConfig
		if err := json.Unmarshal([]byte(val), &cfg); err == nil {
			metrics.ConfigCacheLookups.WithLabelValues("hit").Inc()
			return &cfg, nil
		}
		// corrupt entry, fall through to the store
		metrics.ConfigCacheLookups.WithLabelValues("error").Inc()
		logger.Warn("taste_config_cache_corrupt", "taste_id", tasteID)
	case errors.Is(err, redis.Nil):
		metrics.ConfigCacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.ConfigCacheLookups.WithLabelValues("error").Inc()
		logger.Warn("taste_config_cache_get_failed", "taste_id", tasteID, "error", err)
	}

	cfg, err := c.inner.GetByTasteID(ctx, tasteID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}

	if raw, err := json.Marshal(cfg); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			logger.Warn("taste_config_cache_set_failed", "taste_id", tasteID, "error", err)
		}
	}
	return cfg, nil
}

// FindByRepresentative bypasses the cache; representative lookups are rare
// and the condition fallback makes keys awkward.
func (c *TasteConfigCache) FindByRepresentative(ctx context.Context, key taste.RepresentativeKey) (*domain.TasteConfig, error) {
	return c.inner.FindByRepresentative(ctx, key)
}

// Invalidate drops the cached entry for a taste id.
func (c *TasteConfigCache) Invalidate(ctx context.Context, tasteID int) error {
	if err := c.client.Del(ctx, cacheKey(tasteID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate taste config cache: %w", err)
	}
	return nil
}
