package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stayhub/hotel-booking/internal/api/metrics"
)

// CatalogCache stores JSON-encoded catalog query results under plain string
// keys. Misses are not errors; callers fall through to the database.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

func (c *CatalogCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %q: %w", key, err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %q: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *CatalogCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
