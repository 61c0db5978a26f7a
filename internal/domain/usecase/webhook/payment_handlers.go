package webhook

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
)

func (s *Service) handleCheckoutCompleted(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	session := event.Session
	if session == nil {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}

	id, err := s.locate(ctx, session.Metadata, s.bySessionID(session.ID))
	if err != nil {
		return s.unmatched(event, 0, err)
	}
	txn, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, id)
	if err != nil {
		return s.unmatched(event, id, err)
	}

	changes := entity.Changes{
		entity.FieldExternalSessionID:       session.ID,
		entity.FieldExternalPaymentIntentID: session.PaymentIntentID,
		entity.FieldTransactionStatus:       string(entity.TransactionCompleted),
	}

	// Redeliveries skip the processor once the charge id is stored.
	if session.PaymentIntentID != "" && txn.ExternalChargeID == "" {
		chargeID, err := s.gateway.GetLatestChargeID(ctx, session.PaymentIntentID)
		if err != nil {
			// The status still advances; payment_intent.succeeded fills the charge later.
			s.errorLog.Record(ctx, id, errs.NewProcessorError("retrieve payment intent", err), map[string]any{
				"event_id":          event.ID,
				"payment_intent_id": session.PaymentIntentID,
			})
		} else {
			changes[entity.FieldExternalChargeID] = chargeID
		}
	}

	return s.apply(ctx, event, entity.ChannelPayment, id, changes)
}

func (s *Service) handleCheckoutExpired(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	session := event.Session
	if session == nil {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}

	changes := entity.Changes{
		entity.FieldTransactionStatus: string(entity.TransactionCancelled),
	}
	return s.reconcileEvent(ctx, event, entity.ChannelPayment, changes, session.Metadata,
		s.bySessionID(session.ID))
}

// handlePaymentSucceeded also marks the transfer SUCCEEDED without waiting for a transfer event.
func (s *Service) handlePaymentSucceeded(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	intent := event.PaymentIntent
	if intent == nil {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}

	changes := entity.Changes{
		entity.FieldExternalPaymentIntentID: intent.ID,
		entity.FieldExternalChargeID:        intent.LatestChargeID,
		entity.FieldPaymentStatus:           string(entity.PaymentSucceeded),
		entity.FieldTransferStatus:          string(entity.TransferSucceeded),
	}
	return s.reconcileEvent(ctx, event, entity.ChannelPayment, changes, intent.Metadata,
		s.byPaymentIntentID(intent.ID))
}

func (s *Service) handlePaymentFailed(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	intent := event.PaymentIntent
	if intent == nil {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}

	changes := entity.Changes{
		entity.FieldExternalPaymentIntentID: intent.ID,
		entity.FieldPaymentStatus:           string(entity.PaymentFailed),
	}
	return s.reconcileEvent(ctx, event, entity.ChannelPayment, changes, intent.Metadata,
		s.byPaymentIntentID(intent.ID))
}

func (s *Service) handleChargeRefunded(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	charge := event.Charge
	if charge == nil {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}
	if !charge.Refunded {
		return entity.Received("partial refund ignored"), nil
	}

	changes := entity.Changes{
		entity.FieldPaymentStatus:     string(entity.PaymentRefunded),
		entity.FieldTransactionStatus: string(entity.TransactionRefunded),
	}
	return s.reconcileEvent(ctx, event, entity.ChannelPayment, changes, charge.Metadata,
		s.byChargeID(charge.ID), s.byPaymentIntentID(charge.PaymentIntentID))
}
