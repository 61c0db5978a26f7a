package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	tport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
)

// Field names a mutable column of a transaction. The values double as
// audit log field names and database column names.
type Field string

// Transaction fields the reconciler may change
const (
	FieldTransactionStatus       Field = "transaction_status"
	FieldPaymentStatus           Field = "payment_status"
	FieldTransferStatus          Field = "transfer_status"
	FieldExternalSessionID       Field = "external_session_id"
	FieldExternalPaymentIntentID Field = "external_payment_intent_id"
	FieldExternalChargeID        Field = "external_charge_id"
	FieldExternalTransferID      Field = "external_transfer_id"
)

// IsStatus reports whether the field belongs to the status triad
func (f Field) IsStatus() bool {
	return f == FieldTransactionStatus || f == FieldPaymentStatus || f == FieldTransferStatus
}

// Actor identifies who caused a change
type Actor string

// Actors recorded in the audit trail
const (
	ActorSystem  Actor = "SYSTEM"
	ActorUser    Actor = "USER"
	ActorWebhook Actor = "WEBHOOK"
)

// Transaction is the financial record of one buyer-listing purchase attempt
type Transaction struct {
	ID           uint64
	ListingID    uint64
	BuyerUserID  uint64 // user ids, not profile ids, so rows outlive profile churn
	SellerUserID uint64

	TotalAmount  int64 // minor currency unit
	PlatformFee  int64
	SellerAmount int64

	ExternalSessionID       string
	ExternalPaymentIntentID string
	ExternalChargeID        string
	ExternalTransferID      string

	TransactionStatus TransactionStatus
	PaymentStatus     PaymentStatus
	TransferStatus    TransferStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a PENDING/PENDING/PENDING transaction with a validated fee split
func NewTransaction(
	listingID, buyerUserID, sellerUserID uint64,
	split FeeSplit,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if listingID == 0 || buyerUserID == 0 || sellerUserID == 0 {
		return nil, fmt.Errorf("%w: listing, buyer and seller are required", errs.ErrInvalidRequest)
	}
	if err := split.Validate(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Transaction{
		ListingID:         listingID,
		BuyerUserID:       buyerUserID,
		SellerUserID:      sellerUserID,
		TotalAmount:       split.Total,
		PlatformFee:       split.PlatformFee,
		SellerAmount:      split.SellerAmount,
		TransactionStatus: TransactionPending,
		PaymentStatus:     PaymentPending,
		TransferStatus:    TransferPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// IsCompleted reports whether the buyer finished checkout
func (t *Transaction) IsCompleted() bool {
	return t.TransactionStatus == TransactionCompleted
}

// Value returns the current value of a mutable field
func (t *Transaction) Value(f Field) string {
	switch f {
	case FieldTransactionStatus:
		return string(t.TransactionStatus)
	case FieldPaymentStatus:
		return string(t.PaymentStatus)
	case FieldTransferStatus:
		return string(t.TransferStatus)
	case FieldExternalSessionID:
		return t.ExternalSessionID
	case FieldExternalPaymentIntentID:
		return t.ExternalPaymentIntentID
	case FieldExternalChargeID:
		return t.ExternalChargeID
	case FieldExternalTransferID:
		return t.ExternalTransferID
	default:
		return ""
	}
}

func (t *Transaction) set(f Field, v string) {
	switch f {
	case FieldTransactionStatus:
		t.TransactionStatus = TransactionStatus(v)
	case FieldPaymentStatus:
		t.PaymentStatus = PaymentStatus(v)
	case FieldTransferStatus:
		t.TransferStatus = TransferStatus(v)
	case FieldExternalSessionID:
		t.ExternalSessionID = v
	case FieldExternalPaymentIntentID:
		t.ExternalPaymentIntentID = v
	case FieldExternalChargeID:
		t.ExternalChargeID = v
	case FieldExternalTransferID:
		t.ExternalTransferID = v
	}
}

// FieldChange is one effective mutation of a transaction field
type FieldChange struct {
	Field    Field  `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// SkippedChange is a requested change that was not applied
type SkippedChange struct {
	Field     Field
	Current   string
	Requested string
	Reason    string
}

// Changes is the set of requested field values for one reconciliation step.
// Iteration order is fixed by changeOrder so audit rows are written deterministically.
type Changes map[Field]string

var changeOrder = []Field{
	FieldExternalSessionID,
	FieldExternalPaymentIntentID,
	FieldExternalChargeID,
	FieldExternalTransferID,
	FieldTransactionStatus,
	FieldPaymentStatus,
	FieldTransferStatus,
}

// Apply mutates the transaction with the requested changes and returns the
// effective changes. Status fields only move forward; external identifiers
// are only filled when empty. A request matching the current value is a no-op.
func (t *Transaction) Apply(changes Changes, now time.Time) ([]FieldChange, []SkippedChange) {
	var applied []FieldChange
	var skipped []SkippedChange

	for _, f := range changeOrder {
		requested, ok := changes[f]
		if !ok || requested == "" {
			continue
		}
		current := t.Value(f)
		if current == requested {
			continue
		}

		if f.IsStatus() {
			if !CanTransition(f, current, requested) {
				skipped = append(skipped, SkippedChange{
					Field: f, Current: current, Requested: requested,
					Reason: "status transition not allowed",
				})
				continue
			}
		} else if current != "" {
			skipped = append(skipped, SkippedChange{
				Field: f, Current: current, Requested: requested,
				Reason: "external identifier already set",
			})
			continue
		}

		t.set(f, requested)
		applied = append(applied, FieldChange{Field: f, OldValue: current, NewValue: requested})
	}

	if len(applied) > 0 {
		t.UpdatedAt = now
	}
	return applied, skipped
}
