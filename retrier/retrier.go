package retrier

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Retrier runs a function until it succeeds or the attempt budget is spent,
// backing off exponentially with jitter between attempts.
type Retrier struct {
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
	factor      float64
	jitter      float64
}

func NewRetrier(maxAttempts int, baseDelay, maxDelay time.Duration, factor, jitter float64) *Retrier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Retrier{
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		maxDelay:    maxDelay,
		factor:      factor,
		jitter:      jitter,
	}
}

// Run invokes fn until it returns nil, the attempts are exhausted, or the
// context is canceled while waiting out a backoff delay.
func (r *Retrier) Run(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt == r.maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.calculateDelay(attempt)):
		}
	}
	return fmt.Errorf("max retry attempts reached: %w", err)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.baseDelay) * math.Pow(r.factor, float64(attempt))
	if delay > float64(r.maxDelay) {
		delay = float64(r.maxDelay)
	}
	delay += rand.Float64() * r.jitter * delay
	return time.Duration(delay)
}
