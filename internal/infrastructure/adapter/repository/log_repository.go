package repository

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLogRepository appends transaction audit rows using GORM
type AuditLogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.AuditLogRepository = (*AuditLogRepository)(nil)

// NewAuditLogRepository creates a new AuditLogRepository instance
func NewAuditLogRepository(db *gorm.DB, logger coreport.Logger) *AuditLogRepository {
	return &AuditLogRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// CreateBatch inserts audit rows in one statement
func (r *AuditLogRepository) CreateBatch(ctx context.Context, logs []*entity.TransactionAuditLog) error {
	if len(logs) == 0 {
		return nil
	}

	rows := make([]model.TransactionAuditLog, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, model.TransactionAuditLog{
			TransactionID: l.TransactionID,
			FieldName:     string(l.FieldName),
			OldValue:      l.OldValue,
			NewValue:      l.NewValue,
			ChangedBy:     string(l.ChangedBy),
			Channel:       string(l.Channel),
			CreatedAt:     l.CreatedAt,
		})
	}

	if err := r.db.WithContext(ctx).Omit("Transaction").Create(&rows).Error; err != nil {
		r.logger.Error("Failed to write audit rows", map[string]any{
			"transaction_id": logs[0].TransactionID,
			"rows":           len(rows),
			"error":          err.Error(),
		})
		return r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound)
	}

	for i := range rows {
		logs[i].ID = rows[i].ID
	}
	return nil
}

// ListByTransaction returns the audit trail of a transaction, oldest first
func (r *AuditLogRepository) ListByTransaction(ctx context.Context, transactionID uint64) ([]*entity.TransactionAuditLog, error) {
	var rows []model.TransactionAuditLog
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound)
	}

	out := make([]*entity.TransactionAuditLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.TransactionAuditLog{
			ID:            row.ID,
			TransactionID: row.TransactionID,
			FieldName:     entity.Field(row.FieldName),
			OldValue:      row.OldValue,
			NewValue:      row.NewValue,
			ChangedBy:     entity.Actor(row.ChangedBy),
			Channel:       entity.Channel(row.Channel),
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, nil
}

// ErrorLogRepository writes transaction error rows using GORM
type ErrorLogRepository struct {
	db              *gorm.DB
	errorClassifier *ErrorClassifier
}

var _ persistence.ErrorLogRepository = (*ErrorLogRepository)(nil)

// NewErrorLogRepository creates a new ErrorLogRepository instance
func NewErrorLogRepository(db *gorm.DB) *ErrorLogRepository {
	return &ErrorLogRepository{
		db:              db,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create inserts an error row
func (r *ErrorLogRepository) Create(ctx context.Context, log *entity.TransactionErrorLog) error {
	row := model.TransactionErrorLog{
		TransactionID: log.TransactionID,
		ErrorType:     string(log.ErrorType),
		Message:       log.Message,
		Context:       datatypes.JSONMap(log.Context),
		CreatedAt:     log.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errorClassifier.ToDomain(err, errs.ErrNotFound)
	}
	log.ID = row.ID
	return nil
}
