package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultCodeImageTTL applies when NewCodeImageCache is given no TTL.
	DefaultCodeImageTTL = 24 * time.Hour

	codeImageKeyPrefix = "codeimg"
)

// CodeImageCache stores rendered barcode and QR PNGs.
// A SKU always renders to the same image for a given variant, so entries
// never need invalidation and only expire.
// Key format: "codeimg:{variant}:{payload}"
type CodeImageCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewCodeImageCache creates a CodeImageCache backed by the given RedisClient.
func NewCodeImageCache(r *RedisClient, ttl time.Duration) *CodeImageCache {
	if ttl <= 0 {
		ttl = DefaultCodeImageTTL
	}
	return &CodeImageCache{client: r, ttl: ttl}
}

// Get returns the cached image bytes.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CodeImageCache) Get(ctx context.Context, variant, payload string) ([]byte, error) {
	data, err := c.client.Client().Get(ctx, c.key(variant, payload)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, redis.Nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return data, nil
}

// Set writes the image with the cache TTL.
func (c *CodeImageCache) Set(ctx context.Context, variant, payload string, data []byte) error {
	if err := c.client.Client().Set(ctx, c.key(variant, payload), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// key builds the Redis key: "codeimg:{variant}:{payload}"
func (c *CodeImageCache) key(variant, payload string) string {
	return fmt.Sprintf("%s:%s:%s", codeImageKeyPrefix, variant, payload)
}
