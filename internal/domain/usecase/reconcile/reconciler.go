package reconcile

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/publisher"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/errorlog"
)

// Request is one reconciliation step against a single transaction
type Request struct {
	TransactionID uint64
	Changes       entity.Changes
	Actor         entity.Actor
	Channel       entity.Channel
	Source        string // event id or operation name, for logs
}

// Result describes what a reconciliation step did
type Result struct {
	Transaction *entity.Transaction
	Applied     []entity.FieldChange
	Skipped     []entity.SkippedChange
}

// Changed reports whether anything was written
func (r *Result) Changed() bool {
	return len(r.Applied) > 0
}

// Reconciler applies field changes to transactions under a row lock
// and writes one audit row per effective change in the same unit of work.
type Reconciler struct {
	uow          persistence.UnitOfWork
	errorLog     *errorlog.Writer
	publisher    publisher.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewReconciler creates a new Reconciler
func NewReconciler(
	uow persistence.UnitOfWork,
	errorLog *errorlog.Writer,
	eventPublisher publisher.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		uow:          uow,
		errorLog:     errorLog,
		publisher:    eventPublisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Apply locks the transaction, diffs the requested changes against its fresh state,
// persists the effective changes with their audit rows, and commits.
// A missing transaction returns ErrTransactionNotFound untouched; any other failure
// rolls back, is recorded in the error log, and returns a PersistenceError.
func (r *Reconciler) Apply(ctx context.Context, req Request) (*Result, error) {
	var result Result

	err := r.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		// A retried attempt starts from scratch.
		result = Result{}

		txnRepo := r.uow.GetTransactionRepository(txCtx)
		txn, err := txnRepo.GetByIDForUpdate(txCtx, req.TransactionID)
		if err != nil {
			return err
		}

		now := r.timeProvider.Now()
		applied, skipped := txn.Apply(req.Changes, now)
		result.Transaction = txn
		result.Skipped = skipped
		if len(applied) == 0 {
			return nil
		}

		if err := txnRepo.Update(txCtx, txn); err != nil {
			return err
		}

		auditLogs := entity.NewAuditLogs(txn.ID, applied, req.Actor, req.Channel, now)
		if err := r.uow.GetAuditLogRepository(txCtx).CreateBatch(txCtx, auditLogs); err != nil {
			return err
		}

		result.Applied = applied
		return nil
	})
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, err
		}
		persistErr := errs.NewPersistenceError("reconcile", req.TransactionID, err)
		r.errorLog.Record(ctx, req.TransactionID, persistErr, map[string]any{
			"actor":   string(req.Actor),
			"channel": string(req.Channel),
			"source":  req.Source,
		})
		return nil, persistErr
	}

	for _, s := range result.Skipped {
		r.logger.Warn("Transaction change skipped", map[string]any{
			"transaction_id": req.TransactionID,
			"field":          string(s.Field),
			"current":        s.Current,
			"requested":      s.Requested,
			"reason":         s.Reason,
			"source":         req.Source,
		})
	}

	if !result.Changed() {
		r.logger.Debug("Transaction already reconciled", map[string]any{
			"transaction_id": req.TransactionID,
			"source":         req.Source,
		})
		return &result, nil
	}

	r.logger.Info("Transaction reconciled", map[string]any{
		"transaction_id":     req.TransactionID,
		"changes":            len(result.Applied),
		"transaction_status": string(result.Transaction.TransactionStatus),
		"payment_status":     string(result.Transaction.PaymentStatus),
		"transfer_status":    string(result.Transaction.TransferStatus),
		"changed_by":         string(req.Actor),
		"source":             req.Source,
	})
	r.publish(ctx, req, &result)

	return &result, nil
}

func (r *Reconciler) publish(ctx context.Context, req Request, result *Result) {
	txn := result.Transaction
	event := publisher.TransactionChanged{
		TransactionID:     txn.ID,
		ListingID:         txn.ListingID,
		BuyerUserID:       txn.BuyerUserID,
		SellerUserID:      txn.SellerUserID,
		TransactionStatus: string(txn.TransactionStatus),
		PaymentStatus:     string(txn.PaymentStatus),
		TransferStatus:    string(txn.TransferStatus),
		Changes:           result.Applied,
		ChangedBy:         req.Actor,
		OccurredAt:        txn.UpdatedAt,
	}
	if err := r.publisher.PublishTransactionChanged(ctx, event); err != nil {
		r.logger.Warn("Failed to publish transaction change", map[string]any{
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
	}
}
