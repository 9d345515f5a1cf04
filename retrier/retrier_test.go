package retrier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflare.io/cinder/retrier"
)

func TestRetrier_SucceedsAfterRetries(t *testing.T) {
	r := retrier.NewRetrier(3, time.Millisecond, 5*time.Millisecond, 2, 0)

	attempts := 0
	err := r.Run(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetrier_ExhaustsAttempts(t *testing.T) {
	r := retrier.NewRetrier(2, time.Millisecond, 5*time.Millisecond, 2, 0)

	errBoom := errors.New("permanent")
	attempts := 0
	err := r.Run(context.Background(), func() error {
		attempts++
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, attempts)
}

func TestRetrier_ContextCancel(t *testing.T) {
	r := retrier.NewRetrier(5, 50*time.Millisecond, time.Second, 2, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, func() error {
		return errors.New("always fails")
	})

	require.ErrorIs(t, err, context.Canceled)
}
