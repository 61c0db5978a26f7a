package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/stripe/stripe-go/v74"
)

// Decoder maps stripe event payloads onto gateway events
type Decoder struct{}

var _ gateway.EventDecoder = (*Decoder)(nil)

// NewDecoder creates a new Decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses a verified payload. Unknown event types decode with no object attached.
func (d *Decoder) Decode(payload []byte) (*gateway.Event, error) {
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPayload, err)
	}
	if event.ID == "" || event.Type == "" {
		return nil, fmt.Errorf("%w: event id and type are required", errs.ErrInvalidPayload)
	}

	out := &gateway.Event{ID: event.ID, Type: entity.EventType(event.Type)}

	var err error
	switch out.Type {
	case entity.EventCheckoutSessionCompleted, entity.EventCheckoutSessionExpired:
		var session stripe.CheckoutSession
		if err = decodeObject(&event, &session); err == nil {
			out.Session = sessionObject(&session)
		}
	case entity.EventPaymentIntentSucceeded, entity.EventPaymentIntentPaymentFailed:
		var intent stripe.PaymentIntent
		if err = decodeObject(&event, &intent); err == nil {
			out.PaymentIntent = paymentIntentObject(&intent)
		}
	case entity.EventChargeRefunded:
		var charge stripe.Charge
		if err = decodeObject(&event, &charge); err == nil {
			out.Charge = chargeObject(&charge)
		}
	case entity.EventAccountUpdated:
		var account stripe.Account
		if err = decodeObject(&event, &account); err == nil {
			out.Account = accountState(&account)
		}
	case entity.EventTransferCreated, entity.EventTransferReversed:
		var transfer stripe.Transfer
		if err = decodeObject(&event, &transfer); err == nil {
			out.Transfer = transferObject(&transfer)
		}
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeObject(event *stripe.Event, target any) error {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return fmt.Errorf("%w: event %s has no data object", errs.ErrInvalidPayload, event.ID)
	}
	if err := json.Unmarshal(event.Data.Raw, target); err != nil {
		return fmt.Errorf("%w: event %s object: %v", errs.ErrInvalidPayload, event.ID, err)
	}
	return nil
}

func sessionObject(s *stripe.CheckoutSession) *gateway.SessionObject {
	out := &gateway.SessionObject{ID: s.ID, Metadata: s.Metadata}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out
}

func paymentIntentObject(pi *stripe.PaymentIntent) *gateway.PaymentIntentObject {
	out := &gateway.PaymentIntentObject{ID: pi.ID, Metadata: pi.Metadata}
	if pi.LatestCharge != nil {
		out.LatestChargeID = pi.LatestCharge.ID
	}
	return out
}

func chargeObject(c *stripe.Charge) *gateway.ChargeObject {
	out := &gateway.ChargeObject{ID: c.ID, Refunded: c.Refunded, Metadata: c.Metadata}
	if c.PaymentIntent != nil {
		out.PaymentIntentID = c.PaymentIntent.ID
	}
	return out
}

func transferObject(t *stripe.Transfer) *gateway.TransferObject {
	out := &gateway.TransferObject{ID: t.ID, Reversed: t.Reversed, Metadata: t.Metadata}
	if t.SourceTransaction != nil {
		out.SourceTransaction = t.SourceTransaction.ID
	}
	return out
}

func accountState(a *stripe.Account) *entity.AccountState {
	state := &entity.AccountState{
		AccountID:        a.ID,
		DetailsSubmitted: a.DetailsSubmitted,
		ChargesEnabled:   a.ChargesEnabled,
		PayoutsEnabled:   a.PayoutsEnabled,
		Capabilities:     map[string]string{},
	}
	if a.Requirements != nil {
		state.DisabledReason = string(a.Requirements.DisabledReason)
	}
	if a.Capabilities != nil {
		if a.Capabilities.CardPayments != "" {
			state.Capabilities["card_payments"] = string(a.Capabilities.CardPayments)
		}
		if a.Capabilities.Transfers != "" {
			state.Capabilities["transfers"] = string(a.Capabilities.Transfers)
		}
	}
	return state
}
