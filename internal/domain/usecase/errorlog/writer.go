package errorlog

import (
	"context"
	"errors"
	"maps"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
)

type logFielder interface {
	LogFields() map[string]any
}

// Writer records processing failures in their own unit of work.
// Callers must pass a context that is not bound to a failed transaction.
type Writer struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWriter creates a new Writer
func NewWriter(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Writer {
	return &Writer{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Record stores err against transactionID (zero when uncorrelated). It never fails the caller;
// a failure to record is logged instead.
func (w *Writer) Record(ctx context.Context, transactionID uint64, cause error, details map[string]any) {
	if cause == nil {
		return
	}

	fields := make(map[string]any, len(details)+4)
	var lf logFielder
	if errors.As(cause, &lf) {
		maps.Copy(fields, lf.LogFields())
	}
	maps.Copy(fields, details)

	row := &entity.TransactionErrorLog{
		ErrorType: errs.KindOf(cause),
		Message:   cause.Error(),
		Context:   fields,
		CreatedAt: w.timeProvider.Now(),
	}
	if transactionID != 0 {
		id := transactionID
		row.TransactionID = &id
	}

	// Detach from request cancellation so a timed out request still leaves its trace.
	writeCtx := context.WithoutCancel(ctx)
	if err := w.uow.GetErrorLogRepository(writeCtx).Create(writeCtx, row); err != nil {
		w.logger.Error("Failed to write transaction error log", map[string]any{
			"transaction_id": transactionID,
			"error_type":     string(row.ErrorType),
			"cause":          cause.Error(),
			"error":          err.Error(),
		})
		return
	}

	w.logger.Warn("Transaction error recorded", map[string]any{
		"transaction_id": transactionID,
		"error_type":     string(row.ErrorType),
		"error":          cause.Error(),
	})
}
