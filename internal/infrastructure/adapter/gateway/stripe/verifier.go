package stripe

import (
	"errors"
	"time"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/stripe/stripe-go/v74/webhook"
)

// SignatureVerifier implements gateway.SignatureVerifier with one signing secret per channel
type SignatureVerifier struct {
	secrets   map[entity.Channel]string
	tolerance time.Duration
}

var _ gateway.SignatureVerifier = (*SignatureVerifier)(nil)

// NewSignatureVerifier creates a SignatureVerifier. A zero tolerance disables the timestamp check.
func NewSignatureVerifier(secrets map[entity.Channel]string, tolerance time.Duration) *SignatureVerifier {
	return &SignatureVerifier{
		secrets:   secrets,
		tolerance: tolerance,
	}
}

// Verify validates the header against the secret of the channel the delivery arrived on
func (v *SignatureVerifier) Verify(payload []byte, header string, channel entity.Channel) error {
	secret := v.secrets[channel]
	if secret == "" {
		return errs.NewSignatureError(string(channel), "no signing secret configured")
	}

	var err error
	if v.tolerance > 0 {
		err = webhook.ValidatePayloadWithTolerance(payload, header, secret, v.tolerance)
	} else {
		err = webhook.ValidatePayloadIgnoringTolerance(payload, header, secret)
	}
	if err != nil {
		return errs.NewSignatureError(string(channel), signatureReason(err))
	}
	return nil
}

func signatureReason(err error) string {
	switch {
	case errors.Is(err, webhook.ErrNotSigned):
		return "missing signature header"
	case errors.Is(err, webhook.ErrInvalidHeader):
		return "malformed signature header"
	case errors.Is(err, webhook.ErrTooOld):
		return "timestamp outside tolerance"
	case errors.Is(err, webhook.ErrNoValidSignature):
		return "no matching signature"
	default:
		return err.Error()
	}
}
