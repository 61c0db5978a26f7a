package stripe

import (
	"context"
	"fmt"
	"strconv"

	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// Config holds the processor account settings used to build sessions
type Config struct {
	SecretKey  string
	Currency   string
	SuccessURL string
	CancelURL  string
}

// Gateway implements gateway.PaymentGateway on top of a stripe client
type Gateway struct {
	api    *client.API
	config Config
	logger coreport.Logger
}

var _ gateway.PaymentGateway = (*Gateway)(nil)

// NewGateway creates a Gateway. Nil backends selects the live stripe API.
func NewGateway(config Config, backends *stripe.Backends, logger coreport.Logger) *Gateway {
	return &Gateway{
		api:    client.New(config.SecretKey, backends),
		config: config,
		logger: logger,
	}
}

// CreateCustomer creates a customer tagged with the buyer's user id.
// The idempotency key makes concurrent first checkouts of one buyer converge on one customer.
func (g *Gateway) CreateCustomer(ctx context.Context, buyerUserID uint64) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	params.AddMetadata(gateway.MetadataBuyerUserID, strconv.FormatUint(buyerUserID, 10))
	params.SetIdempotencyKey(fmt.Sprintf("customer-%d", buyerUserID))

	customer, err := g.api.Customers.New(params)
	if err != nil {
		g.logger.Error("Failed to create processor customer", map[string]any{
			"buyer_user_id": buyerUserID,
			"error":         err.Error(),
		})
		return "", errs.NewProcessorError("create customer", err)
	}
	return customer.ID, nil
}

// CreateCheckoutSession creates a one-item payment session. The application fee stays
// with the platform and the remainder is transferred to the destination account.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, p gateway.CheckoutSessionParams) (*gateway.CheckoutSession, error) {
	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(p.ProductName),
	}
	if p.ProductDescription != "" {
		product.Description = stripe.String(p.ProductDescription)
	}
	if p.ImageURL != "" {
		product.Images = stripe.StringSlice([]string{p.ImageURL})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		Customer:   stripe.String(p.CustomerID),
		SuccessURL: stripe.String(g.config.SuccessURL),
		CancelURL:  stripe.String(g.config.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(g.config.Currency),
					UnitAmount:  stripe.Int64(p.Amount),
					ProductData: product,
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(p.ApplicationFee),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(p.DestinationAccountID),
			},
			Metadata: p.Metadata,
		},
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	if txID := p.Metadata[gateway.MetadataTransactionID]; txID != "" {
		params.SetIdempotencyKey("checkout-" + txID)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Error("Failed to create checkout session", map[string]any{
			"transaction_id": p.Metadata[gateway.MetadataTransactionID],
			"error":          err.Error(),
		})
		return nil, errs.NewProcessorError("create checkout session", err)
	}
	return &gateway.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// GetLatestChargeID retrieves a payment intent and returns its latest charge id
func (g *Gateway) GetLatestChargeID(ctx context.Context, paymentIntentID string) (string, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return "", errs.NewProcessorError("retrieve payment intent", err)
	}
	if intent.LatestCharge == nil {
		return "", nil
	}
	return intent.LatestCharge.ID, nil
}
