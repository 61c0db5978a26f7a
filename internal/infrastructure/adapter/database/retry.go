package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/cenkalti/backoff/v4"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	JitterFactor    float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		JitterFactor:    0.2,
	}
}

func (c RetryConfig) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.InitialInterval
	b.MaxInterval = c.MaxInterval
	b.RandomizationFactor = c.JitterFactor
	b.MaxElapsedTime = 0

	retries := c.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)
}

// RetryOnTransientError runs operation until it succeeds, returns an error
// retryable rejects, or the retry budget is spent.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	retryable func(error) bool,
	logger coreport.Logger,
) error {
	attempt := 0
	op := func() error {
		attempt++
		err := operation()
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})
	}

	err := backoff.RetryNotify(op, config.backOff(ctx), notify)
	if err != nil && retryable(err) {
		logger.Error("All retry attempts failed", map[string]any{
			"attempts":    attempt,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
		})
	}
	return err
}
