package cinder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Factory computes a value for a key that is not in the cache.
type Factory func(ctx context.Context) (any, error)

// Loader fetches a value for a key during warmup.
type Loader func(ctx context.Context, key string) (any, error)

// GetOrSet 回傳快取中的值，不存在時透過 factory 計算並寫入
//
// The factory runs at most once per call and never speculatively. Factory
// errors are returned to the caller unchanged and nothing is cached.
// Concurrent callers for the same absent key each run their own factory;
// this is not a single-flight contract.
func (c *Cache) GetOrSet(ctx context.Context, key string, factory Factory, ttl ...time.Duration) (any, error) {
	ctx, span := c.tracer.Start(ctx, "Cache.GetOrSet",
		trace.WithAttributes(attribute.String("key", key)))
	defer span.End()

	if value, ok := c.Get(key); ok {
		return value, nil
	}

	if factory == nil {
		return nil, ErrNilFactory
	}

	value, err := factory(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.Set(key, value, ttl...)
	return value, nil
}

// Warmup 透過 loader 預先載入一組鍵
//
// Loads run with bounded concurrency. A key whose loader fails is skipped
// and its error collected; the combined error reports every failed key.
func (c *Cache) Warmup(ctx context.Context, keys []string, loader Loader, ttl ...time.Duration) error {
	ctx, span := c.tracer.Start(ctx, "Cache.Warmup",
		trace.WithAttributes(attribute.Int("keys", len(keys))))
	defer span.End()

	if loader == nil {
		return ErrNilLoader
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	g.SetLimit(c.config.WarmupConcurrency)

	for _, key := range keys {
		key := key
		g.Go(func() error {
			value, err := c.loadWithResilience(ctx, key, loader)
			if err != nil {
				c.logger.Warn("failed to warm key", zap.String("key", key), zap.Error(err))
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("warm up %q: %w", key, err))
				mu.Unlock()
				return nil
			}
			c.Set(key, value, ttl...)
			return nil
		})
	}

	_ = g.Wait()
	if errs != nil {
		span.RecordError(errs)
	}
	return errs
}

// loadWithResilience runs the loader through the retrier and, when enabled,
// the circuit breaker.
func (c *Cache) loadWithResilience(ctx context.Context, key string, loader Loader) (any, error) {
	run := func() (any, error) {
		var value any
		err := c.retrier.Run(ctx, func() error {
			var err error
			value, err = loader(ctx, key)
			return err
		})
		return value, err
	}

	if c.loaderCB != nil {
		return c.loaderCB.Execute(run)
	}
	return run()
}
