package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn in a new transaction, committing on nil and rolling back otherwise.
	// Lock contention failures are retried with backoff, so fn must be safe to re-run.
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetAuditLogRepository returns an audit log repository bound to the current transaction
	GetAuditLogRepository(ctx context.Context) AuditLogRepository

	// GetErrorLogRepository returns an error log repository bound to the current transaction
	GetErrorLogRepository(ctx context.Context) ErrorLogRepository

	// GetListingRepository returns a listing repository bound to the current transaction
	GetListingRepository(ctx context.Context) ListingRepository

	// GetTakeRateRepository returns a take rate repository bound to the current transaction
	GetTakeRateRepository(ctx context.Context) TakeRateRepository

	// GetProfileRepository returns a profile repository bound to the current transaction
	GetProfileRepository(ctx context.Context) ProfileRepository

	// GetWebhookEventRepository returns a webhook event repository bound to the current transaction
	GetWebhookEventRepository(ctx context.Context) WebhookEventRepository
}
