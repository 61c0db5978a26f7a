package persistence

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// TransactionRepository defines the methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateRecord: If a COMPLETED transaction already exists for the listing and buyer
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update writes the mutable fields and updated_at of an existing transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDuplicateRecord: If completing it would create a second COMPLETED purchase
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction. Only used as the checkout compensating action.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// SetSessionID stores the hosted checkout session id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	SetSessionID(ctx context.Context, id uint64, sessionID string) error

	// GetByID retrieves a transaction by its surrogate id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetByIDForUpdate retrieves a transaction and locks the row until the unit of work ends.
	// Must be called with a transactional context.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrLockContention: If the lock could not be acquired
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Transaction, error)

	// GetBySessionID retrieves a transaction by its checkout session id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the session id
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Transaction, error)

	// GetByPaymentIntentID retrieves a transaction by its payment intent id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the payment intent id
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Transaction, error)

	// GetByChargeID retrieves a transaction by its charge id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the charge id
	GetByChargeID(ctx context.Context, chargeID string) (*entity.Transaction, error)

	// FindCompleted returns the COMPLETED transaction of a buyer for a listing
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the buyer has not completed a purchase of the listing
	FindCompleted(ctx context.Context, listingID, buyerUserID uint64) (*entity.Transaction, error)

	// ListCompletedByBuyer returns the buyer's COMPLETED transactions, newest first
	ListCompletedByBuyer(ctx context.Context, buyerUserID uint64) ([]*entity.Transaction, error)
}
