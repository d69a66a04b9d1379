package render

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/skulabel/pkg/logger"
)

// Renderer turns a payload into image bytes. Variant names the rendering
// parameters so cached images are never shared across different settings.
type Renderer interface {
	Render(ctx context.Context, payload string) ([]byte, error)
	Variant() string
}

// ImageStore is the cache backing Cached. Get returns redis.Nil on a miss.
type ImageStore interface {
	Get(ctx context.Context, variant, payload string) ([]byte, error)
	Set(ctx context.Context, variant, payload string, data []byte) error
}

// Cached serves images from an ImageStore and renders on a miss.
// Store failures are logged and never fail the render.
type Cached struct {
	next  Renderer
	store ImageStore
	log   logger.Logger
}

// NewCached wraps next with store.
func NewCached(next Renderer, store ImageStore, log logger.Logger) *Cached {
	return &Cached{next: next, store: store, log: log}
}

// Render returns the stored image for payload, rendering and storing it on a miss.
func (c *Cached) Render(ctx context.Context, payload string) ([]byte, error) {
	variant := c.next.Variant()

	data, err := c.store.Get(ctx, variant, payload)
	if err == nil && len(data) > 0 {
		return data, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.WarnContext(ctx, "code image cache read failed", "variant", variant, "error", err)
	}

	data, err = c.next.Render(ctx, payload)
	if err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, variant, payload, data); err != nil {
		c.log.WarnContext(ctx, "code image cache write failed", "variant", variant, "error", err)
	}
	return data, nil
}

// Variant reports the wrapped renderer's variant, so cache keys match it.
func (c *Cached) Variant() string {
	return c.next.Variant()
}
