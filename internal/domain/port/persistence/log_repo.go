package persistence

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// AuditLogRepository appends transaction audit rows
type AuditLogRepository interface {
	// CreateBatch inserts audit rows. Called inside the unit of work that mutated the transaction.
	CreateBatch(ctx context.Context, logs []*entity.TransactionAuditLog) error

	// ListByTransaction returns the audit trail of a transaction, oldest first
	ListByTransaction(ctx context.Context, transactionID uint64) ([]*entity.TransactionAuditLog, error)
}

// ErrorLogRepository records processing failures
type ErrorLogRepository interface {
	// Create inserts an error row
	Create(ctx context.Context, log *entity.TransactionErrorLog) error
}
