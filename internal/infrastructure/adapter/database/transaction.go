package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// TxSettings tunes transactions started by a UnitOfWork
type TxSettings struct {
	// LockTimeout is applied with SET LOCAL lock_timeout; zero leaves the server default
	LockTimeout time.Duration
	Retry       RetryConfig
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	settings    TxSettings
	errorMapper *ErrorMapper
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, settings TxSettings) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		settings:    settings,
		errorMapper: NewErrorMapper(),
	}
}

// Begin starts a READ COMMITTED transaction. Row locks taken with
// SELECT ... FOR UPDATE serialize writers of the same transaction row.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	if ms := u.settings.LockTimeout.Milliseconds(); ms > 0 {
		if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", ms)).Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set lock timeout", map[string]any{"error": err.Error()})
			return ctx, u.errorMapper.MapError(err, "set lock timeout")
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// WithinTransaction runs fn inside a transaction. A call made with a context that already
// carries a transaction joins it instead of opening a new one.
func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.settings.Retry, func() error {
		return u.runOnce(ctx, fn)
	}, u.errorMapper.IsRetryable, u.logger)
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(txCtx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failed unit of work", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetAuditLogRepository returns an audit log repository in the current transaction
func (u *UnitOfWork) GetAuditLogRepository(ctx context.Context) persistence.AuditLogRepository {
	return repository.NewAuditLogRepository(u.getDbFromContext(ctx), u.logger)
}

// GetErrorLogRepository returns an error log repository in the current transaction
func (u *UnitOfWork) GetErrorLogRepository(ctx context.Context) persistence.ErrorLogRepository {
	return repository.NewErrorLogRepository(u.getDbFromContext(ctx))
}

// GetListingRepository returns a listing repository in the current transaction
func (u *UnitOfWork) GetListingRepository(ctx context.Context) persistence.ListingRepository {
	return repository.NewListingRepository(u.getDbFromContext(ctx))
}

// GetTakeRateRepository returns a take rate repository in the current transaction
func (u *UnitOfWork) GetTakeRateRepository(ctx context.Context) persistence.TakeRateRepository {
	return repository.NewTakeRateRepository(u.getDbFromContext(ctx), u.logger)
}

// GetProfileRepository returns a profile repository in the current transaction
func (u *UnitOfWork) GetProfileRepository(ctx context.Context) persistence.ProfileRepository {
	return repository.NewProfileRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWebhookEventRepository returns a webhook ledger repository in the current transaction
func (u *UnitOfWork) GetWebhookEventRepository(ctx context.Context) persistence.WebhookEventRepository {
	return repository.NewWebhookEventRepository(u.getDbFromContext(ctx))
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
