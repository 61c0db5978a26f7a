package usecase

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
)

// WebhookUseCase handles processor deliveries
type WebhookUseCase interface {
	// Handle verifies, decodes and dispatches a delivery.
	// A non-nil error is only returned for signature or payload integrity failures;
	// every other failure is reported through the outcome.
	Handle(ctx context.Context, payload []byte, signatureHeader string, channel entity.Channel) (entity.Outcome, error)
}
