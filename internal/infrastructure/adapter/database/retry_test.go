package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	mapper := NewErrorMapper()
	lockErr := fmt.Errorf("%w: could not obtain lock", errs.ErrLockContention)

	t.Run("succeeds after lock contention", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			if calls < 3 {
				return lockErr
			}
			return nil
		}, mapper.IsRetryable, logger.NewNoopLogger())

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry permanent errors", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			return errs.ErrTransactionNotFound
		}, mapper.IsRetryable, logger.NewNoopLogger())

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(2), func() error {
			calls++
			return lockErr
		}, mapper.IsRetryable, logger.NewNoopLogger())

		assert.ErrorIs(t, err, errs.ErrLockContention)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := RetryOnTransientError(ctx, fastRetry(10), func() error {
			calls++
			cancel()
			return lockErr
		}, mapper.IsRetryable, logger.NewNoopLogger())

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	assert.NoError(t, mapper.MapError(nil, "commit"))
	assert.Same(t, errs.ErrTransactionNotFound, mapper.MapError(errs.ErrTransactionNotFound, "commit"))

	serialization := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
	mapped := mapper.MapError(serialization, "commit transaction")
	assert.ErrorIs(t, mapped, errs.ErrLockContention)
	assert.True(t, mapper.IsRetryable(mapped))
	assert.True(t, mapper.IsRetryable(serialization))

	mapped = mapper.MapError(errors.New("dial tcp: connection refused"), "begin transaction")
	assert.ErrorIs(t, mapped, errs.ErrDatabaseConnection)
	assert.False(t, mapper.IsRetryable(mapped))
}
