package publisher

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// TransactionChanged is emitted after a reconciliation commits at least one change
type TransactionChanged struct {
	TransactionID     uint64               `json:"transaction_id"`
	ListingID         uint64               `json:"listing_id"`
	BuyerUserID       uint64               `json:"buyer_user_id"`
	SellerUserID      uint64               `json:"seller_user_id"`
	TransactionStatus string               `json:"transaction_status"`
	PaymentStatus     string               `json:"payment_status"`
	TransferStatus    string               `json:"transfer_status"`
	Changes           []entity.FieldChange `json:"changes"`
	ChangedBy         entity.Actor         `json:"changed_by"`
	OccurredAt        time.Time            `json:"occurred_at"`
}

// EventPublisher fans transaction changes out to downstream consumers
type EventPublisher interface {
	// PublishTransactionChanged publishes a committed change. Delivery is best effort.
	PublishTransactionChanged(ctx context.Context, event TransactionChanged) error

	// Close releases the underlying connection
	Close() error
}
