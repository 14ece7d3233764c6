// Package cache stores serialized dashboard summaries.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
)

const (
	keyPrefix = "sponsor-tracker:summary:"
	scanBatch = 100
)

// RedisSummaryCache implements adapter.SummaryCache on redis.
// Keys look like "sponsor-tracker:summary:2025/2026:Received".
type RedisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache creates a cache on an existing redis client.
func NewRedisSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

// Get returns the cached payload and whether it was found.
func (c *RedisSummaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return payload, true, nil
}

// Set stores payload under key for ttl.
func (c *RedisSummaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// InvalidateFiscalYear deletes every summary cached for fiscalYear, whatever its filter.
func (c *RedisSummaryCache) InvalidateFiscalYear(ctx context.Context, fiscalYear string) error {
	pattern := keyPrefix + fiscalYear + ":*"

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Ping reports whether redis is reachable.
func (c *RedisSummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// NoopSummaryCache never stores anything. Used when no redis address is configured.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NoopSummaryCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NoopSummaryCache) InvalidateFiscalYear(context.Context, string) error { return nil }

func (NoopSummaryCache) Ping(context.Context) error { return nil }

var (
	_ adapter.SummaryCache = (*RedisSummaryCache)(nil)
	_ adapter.SummaryCache = NoopSummaryCache{}
)
