package gateway

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// Metadata keys attached to checkout sessions and payment intents for correlation
const (
	MetadataTransactionID = "transaction_id"
	MetadataBuyerUserID   = "buyer_user_id"
	MetadataSellerUserID  = "seller_user_id"
	MetadataListingID     = "listing_id"
)

// CheckoutSessionParams describes a hosted checkout session for a single listing
type CheckoutSessionParams struct {
	CustomerID           string
	ProductName          string
	ProductDescription   string
	ImageURL             string
	Amount               int64
	ApplicationFee       int64
	DestinationAccountID string
	Metadata             map[string]string
}

// CheckoutSession is the processor's hosted checkout session
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentGateway is the outbound port to the payment processor
type PaymentGateway interface {
	// CreateCustomer creates a processor customer for a buyer and returns its id
	CreateCustomer(ctx context.Context, buyerUserID uint64) (string, error)

	// CreateCheckoutSession creates a hosted payment session routing the remainder to the seller
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)

	// GetLatestChargeID returns the id of the latest charge of a payment intent, empty when none
	GetLatestChargeID(ctx context.Context, paymentIntentID string) (string, error)
}

// SessionObject is the subset of a checkout session carried by events
type SessionObject struct {
	ID              string
	PaymentIntentID string
	Metadata        map[string]string
}

// PaymentIntentObject is the subset of a payment intent carried by events
type PaymentIntentObject struct {
	ID             string
	LatestChargeID string
	Metadata       map[string]string
}

// ChargeObject is the subset of a charge carried by events
type ChargeObject struct {
	ID              string
	PaymentIntentID string
	Refunded        bool
	Metadata        map[string]string
}

// TransferObject is the subset of a transfer carried by events
type TransferObject struct {
	ID                string
	SourceTransaction string
	Reversed          bool
	Metadata          map[string]string
}

// Event is a decoded processor event. Exactly one object pointer is set for known types.
type Event struct {
	ID            string
	Type          entity.EventType
	Session       *SessionObject
	PaymentIntent *PaymentIntentObject
	Charge        *ChargeObject
	Account       *entity.AccountState
	Transfer      *TransferObject
}

// EventDecoder turns a verified payload into an event
type EventDecoder interface {
	// Decode parses the payload. Unknown types decode with no object set.
	//
	// Possible errors:
	// - ErrInvalidPayload: If the payload or its object is not valid JSON of the expected shape
	Decode(payload []byte) (*Event, error)
}

// SignatureVerifier authenticates raw deliveries against the channel's signing secret
type SignatureVerifier interface {
	// Verify checks the signature header over the exact payload bytes.
	//
	// Possible errors:
	// - ErrSignatureInvalid: If no secret is configured, the header is malformed or stale, or no signature matches
	Verify(payload []byte, header string, channel entity.Channel) error
}
