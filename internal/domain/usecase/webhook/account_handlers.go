package webhook

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
)

func (s *Service) handleAccountUpdated(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	if event.Account == nil || event.Account.AccountID == "" {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}

	if _, err := s.tracker.SyncAccount(ctx, *event.Account); err != nil {
		if errs.IsNotFoundError(err) {
			s.logger.Warn("No seller profile for connected account", map[string]any{
				"event_id":   event.ID,
				"account_id": event.Account.AccountID,
			})
			return entity.Success("seller profile not found"), nil
		}
		return entity.Outcome{}, err
	}
	return entity.Success("account status synced"), nil
}

func (s *Service) handleTransferCreated(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	transfer := event.Transfer
	if transfer == nil {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}

	changes := entity.Changes{
		entity.FieldExternalTransferID: transfer.ID,
		entity.FieldTransferStatus:     string(entity.TransferProcessing),
	}
	return s.reconcileEvent(ctx, event, entity.ChannelTransfer, changes, transfer.Metadata,
		s.byChargeID(transfer.SourceTransaction))
}

func (s *Service) handleTransferReversed(ctx context.Context, event *gateway.Event) (entity.Outcome, error) {
	transfer := event.Transfer
	if transfer == nil {
		return entity.Outcome{}, errs.ErrInvalidPayload
	}

	changes := entity.Changes{
		entity.FieldExternalTransferID: transfer.ID,
		entity.FieldTransferStatus:     string(entity.TransferFailed),
	}
	return s.reconcileEvent(ctx, event, entity.ChannelTransfer, changes, transfer.Metadata,
		s.byChargeID(transfer.SourceTransaction))
}
