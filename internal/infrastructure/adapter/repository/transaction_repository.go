package repository

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                      txn.ID,
		ListingID:               txn.ListingID,
		BuyerUserID:             txn.BuyerUserID,
		SellerUserID:            txn.SellerUserID,
		TotalAmount:             txn.TotalAmount,
		PlatformFee:             txn.PlatformFee,
		SellerAmount:            txn.SellerAmount,
		ExternalSessionID:       nullable(txn.ExternalSessionID),
		ExternalPaymentIntentID: nullable(txn.ExternalPaymentIntentID),
		ExternalChargeID:        nullable(txn.ExternalChargeID),
		ExternalTransferID:      nullable(txn.ExternalTransferID),
		TransactionStatus:       string(txn.TransactionStatus),
		PaymentStatus:           string(txn.PaymentStatus),
		TransferStatus:          string(txn.TransferStatus),
		CreatedAt:               txn.CreatedAt,
		UpdatedAt:               txn.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                      m.ID,
		ListingID:               m.ListingID,
		BuyerUserID:             m.BuyerUserID,
		SellerUserID:            m.SellerUserID,
		TotalAmount:             m.TotalAmount,
		PlatformFee:             m.PlatformFee,
		SellerAmount:            m.SellerAmount,
		ExternalSessionID:       deref(m.ExternalSessionID),
		ExternalPaymentIntentID: deref(m.ExternalPaymentIntentID),
		ExternalChargeID:        deref(m.ExternalChargeID),
		ExternalTransferID:      deref(m.ExternalTransferID),
		TransactionStatus:       entity.TransactionStatus(m.TransactionStatus),
		PaymentStatus:           entity.PaymentStatus(m.PaymentStatus),
		TransferStatus:          entity.TransferStatus(m.TransferStatus),
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

// Create inserts a new transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)
	txnModel.ID = 0

	if err := r.db.WithContext(ctx).Create(&txnModel).Error; err != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"listing_id":    txn.ListingID,
			"buyer_user_id": txn.BuyerUserID,
			"error":         err.Error(),
		})
		return r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound)
	}

	txn.ID = txnModel.ID
	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": txn.ID,
		"listing_id":     txn.ListingID,
		"buyer_user_id":  txn.BuyerUserID,
	})
	return nil
}

// Update writes the mutable columns of a transaction
func (r *TransactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", txn.ID).
		Updates(map[string]any{
			"external_session_id":        txnModel.ExternalSessionID,
			"external_payment_intent_id": txnModel.ExternalPaymentIntentID,
			"external_charge_id":         txnModel.ExternalChargeID,
			"external_transfer_id":       txnModel.ExternalTransferID,
			"transaction_status":         txnModel.TransactionStatus,
			"payment_status":             txnModel.PaymentStatus,
			"transfer_status":            txnModel.TransferStatus,
			"updated_at":                 txnModel.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": txn.ID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.ToDomain(result.Error, errs.ErrTransactionNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction. Audit rows cascade.
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error; err != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound)
	}

	r.logger.Info("Transaction deleted", map[string]any{"transaction_id": id})
	return nil
}

// SetSessionID stores the checkout session id
func (r *TransactionRepository) SetSessionID(ctx context.Context, id uint64, sessionID string) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("external_session_id", sessionID)

	if result.Error != nil {
		r.logger.Error("Failed to store checkout session id", map[string]any{
			"transaction_id": id,
			"session_id":     sessionID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.ToDomain(result.Error, errs.ErrTransactionNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves a transaction by its surrogate id
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// GetByIDForUpdate retrieves a transaction under SELECT ... FOR UPDATE
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id)
	return r.first(query)
}

// GetBySessionID retrieves a transaction by its checkout session id
func (r *TransactionRepository) GetBySessionID(ctx context.Context, sessionID string) (*entity.Transaction, error) {
	return r.first(r.db.WithContext(ctx).Where("external_session_id = ?", sessionID))
}

// GetByPaymentIntentID retrieves a transaction by its payment intent id
func (r *TransactionRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Transaction, error) {
	return r.first(r.db.WithContext(ctx).Where("external_payment_intent_id = ?", paymentIntentID))
}

// GetByChargeID retrieves a transaction by its charge id
func (r *TransactionRepository) GetByChargeID(ctx context.Context, chargeID string) (*entity.Transaction, error) {
	return r.first(r.db.WithContext(ctx).Where("external_charge_id = ?", chargeID))
}

// FindCompleted returns the COMPLETED purchase of a listing by a buyer
func (r *TransactionRepository) FindCompleted(ctx context.Context, listingID, buyerUserID uint64) (*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("listing_id = ? AND buyer_user_id = ? AND transaction_status = ?",
			listingID, buyerUserID, string(entity.TransactionCompleted))
	return r.first(query)
}

// ListCompletedByBuyer returns the buyer's COMPLETED purchases, newest first
func (r *TransactionRepository) ListCompletedByBuyer(ctx context.Context, buyerUserID uint64) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("buyer_user_id = ? AND transaction_status = ?", buyerUserID, string(entity.TransactionCompleted)).
		Order("updated_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list purchases", map[string]any{
			"buyer_user_id": buyerUserID,
			"error":         err.Error(),
		})
		return nil, r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound)
	}

	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, r.modelToEntity(&rows[i]))
	}
	return out, nil
}

func (r *TransactionRepository) first(query *gorm.DB) (*entity.Transaction, error) {
	var txnModel model.Transaction
	if err := query.First(&txnModel).Error; err != nil {
		mapped := r.errorClassifier.ToDomain(err, errs.ErrTransactionNotFound)
		if !errs.IsNotFoundError(mapped) {
			r.logger.Error("Failed to get transaction", map[string]any{"error": err.Error()})
		}
		return nil, mapped
	}
	return r.modelToEntity(&txnModel), nil
}
