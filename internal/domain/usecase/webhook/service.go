package webhook

import (
	"context"
	"errors"
	"strconv"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/errorlog"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/onboarding"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/usecase/reconcile"
)

type handlerFunc func(ctx context.Context, event *gateway.Event) (entity.Outcome, error)

// Service verifies, decodes and dispatches processor deliveries
type Service struct {
	verifier     gateway.SignatureVerifier
	decoder      gateway.EventDecoder
	gateway      gateway.PaymentGateway
	reconciler   *reconcile.Reconciler
	tracker      *onboarding.Tracker
	errorLog     *errorlog.Writer
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	handlers map[entity.Channel]map[entity.EventType]handlerFunc
}

var _ usecase.WebhookUseCase = (*Service)(nil)

// NewService creates a new webhook Service
func NewService(
	verifier gateway.SignatureVerifier,
	decoder gateway.EventDecoder,
	paymentGateway gateway.PaymentGateway,
	reconciler *reconcile.Reconciler,
	tracker *onboarding.Tracker,
	errorLog *errorlog.Writer,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	s := &Service{
		verifier:     verifier,
		decoder:      decoder,
		gateway:      paymentGateway,
		reconciler:   reconciler,
		tracker:      tracker,
		errorLog:     errorLog,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}

	s.handlers = map[entity.Channel]map[entity.EventType]handlerFunc{
		entity.ChannelPayment: {
			entity.EventCheckoutSessionCompleted:   s.handleCheckoutCompleted,
			entity.EventCheckoutSessionExpired:     s.handleCheckoutExpired,
			entity.EventPaymentIntentSucceeded:     s.handlePaymentSucceeded,
			entity.EventPaymentIntentPaymentFailed: s.handlePaymentFailed,
			entity.EventChargeRefunded:             s.handleChargeRefunded,
		},
		entity.ChannelConnect: {
			entity.EventAccountUpdated: s.handleAccountUpdated,
		},
		entity.ChannelTransfer: {
			entity.EventTransferCreated:  s.handleTransferCreated,
			entity.EventTransferReversed: s.handleTransferReversed,
		},
	}
	return s
}

// Handle verifies and dispatches one delivery.
// Only signature and payload integrity failures return an error; those leave no trace in the database.
func (s *Service) Handle(ctx context.Context, payload []byte, signatureHeader string, channel entity.Channel) (entity.Outcome, error) {
	if err := s.verifier.Verify(payload, signatureHeader, channel); err != nil {
		s.logger.Warn("Webhook signature rejected", map[string]any{
			"channel": string(channel),
			"error":   err.Error(),
		})
		return entity.Outcome{}, err
	}

	event, err := s.decoder.Decode(payload)
	if err != nil {
		s.logger.Warn("Webhook payload rejected", map[string]any{
			"channel": string(channel),
			"error":   err.Error(),
		})
		return entity.Outcome{}, err
	}

	fields := map[string]any{
		"channel":    string(channel),
		"event_id":   event.ID,
		"event_type": string(event.Type),
	}

	var handler handlerFunc
	if byType, ok := s.handlers[channel]; ok {
		handler = byType[event.Type]
	}
	if handler == nil {
		s.logger.Debug("Ignoring unhandled webhook event", fields)
		return entity.Received("event type not handled"), nil
	}

	ledger := s.uow.GetWebhookEventRepository(ctx)
	record, err := ledger.GetByEventID(ctx, event.ID)
	switch {
	case err == nil && record.IsProcessed():
		s.logger.Info("Webhook event already processed", fields)
		return entity.Success("event already processed"), nil
	case err == nil:
	case errs.IsNotFoundError(err):
		record = &entity.WebhookEvent{
			EventID:   event.ID,
			Type:      event.Type,
			Channel:   channel,
			Payload:   payload,
			CreatedAt: s.timeProvider.Now(),
		}
	default:
		// The ledger only short-circuits; state-based idempotency still holds without it.
		s.logger.Warn("Webhook ledger lookup failed", mergeFields(fields, map[string]any{"error": err.Error()}))
		record = nil
	}

	outcome, handleErr := handler(ctx, event)
	if handleErr != nil {
		var persistErr *errs.PersistenceError
		txID := transactionIDOf(handleErr)
		if !errors.As(handleErr, &persistErr) {
			s.errorLog.Record(ctx, txID, handleErr, fields)
		}
		s.logger.Error("Webhook event handling failed", mergeFields(fields, map[string]any{
			"transaction_id": txID,
			"error":          handleErr.Error(),
		}))
		outcome = entity.Failed(handleErr.Error())
	}

	if record != nil {
		if handleErr != nil {
			record.MarkFailed(handleErr.Error())
		} else {
			record.MarkProcessed(s.timeProvider.Now())
		}
		if err := ledger.Save(ctx, record); err != nil {
			s.logger.Warn("Failed to save webhook ledger entry", mergeFields(fields, map[string]any{"error": err.Error()}))
		}
	}

	s.logger.Info("Webhook event handled", mergeFields(fields, map[string]any{
		"outcome": string(outcome.Status),
		"message": outcome.Message,
	}))
	return outcome, nil
}

// transactionLookup resolves a transaction from a processor identifier
type transactionLookup func(ctx context.Context) (*entity.Transaction, error)

// locate resolves the transaction id from metadata, falling back to stored processor ids.
// Returns ErrTransactionNotFound when nothing matches.
func (s *Service) locate(ctx context.Context, metadata map[string]string, fallbacks ...transactionLookup) (uint64, error) {
	if raw, ok := metadata[gateway.MetadataTransactionID]; ok {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			return id, nil
		}
		s.logger.Warn("Ignoring malformed transaction id in metadata", map[string]any{"value": raw})
	}

	for _, lookup := range fallbacks {
		if lookup == nil {
			continue
		}
		txn, err := lookup(ctx)
		if err == nil {
			return txn.ID, nil
		}
		if !errs.IsNotFoundError(err) {
			return 0, err
		}
	}
	return 0, errs.ErrTransactionNotFound
}

func (s *Service) bySessionID(id string) transactionLookup {
	if id == "" {
		return nil
	}
	return func(ctx context.Context) (*entity.Transaction, error) {
		return s.uow.GetTransactionRepository(ctx).GetBySessionID(ctx, id)
	}
}

func (s *Service) byPaymentIntentID(id string) transactionLookup {
	if id == "" {
		return nil
	}
	return func(ctx context.Context) (*entity.Transaction, error) {
		return s.uow.GetTransactionRepository(ctx).GetByPaymentIntentID(ctx, id)
	}
}

func (s *Service) byChargeID(id string) transactionLookup {
	if id == "" {
		return nil
	}
	return func(ctx context.Context) (*entity.Transaction, error) {
		return s.uow.GetTransactionRepository(ctx).GetByChargeID(ctx, id)
	}
}

// reconcileEvent locates the transaction and applies changes to it.
// A transaction that cannot be found is acknowledged with a warning.
func (s *Service) reconcileEvent(
	ctx context.Context,
	event *gateway.Event,
	channel entity.Channel,
	changes entity.Changes,
	metadata map[string]string,
	fallbacks ...transactionLookup,
) (entity.Outcome, error) {
	id, err := s.locate(ctx, metadata, fallbacks...)
	if err != nil {
		return s.unmatched(event, 0, err)
	}
	return s.apply(ctx, event, channel, id, changes)
}

// apply reconciles changes into a located transaction
func (s *Service) apply(
	ctx context.Context,
	event *gateway.Event,
	channel entity.Channel,
	id uint64,
	changes entity.Changes,
) (entity.Outcome, error) {
	_, err := s.reconciler.Apply(ctx, reconcile.Request{
		TransactionID: id,
		Changes:       changes,
		Actor:         entity.ActorWebhook,
		Channel:       channel,
		Source:        event.ID,
	})
	if err != nil {
		return s.unmatched(event, id, err)
	}
	return entity.Success(string(event.Type) + " processed"), nil
}

// unmatched acknowledges a missing transaction and tags any other failure with the located id
func (s *Service) unmatched(event *gateway.Event, id uint64, err error) (entity.Outcome, error) {
	if errs.IsNotFoundError(err) {
		s.logger.Warn("No transaction matches webhook event", map[string]any{
			"event_id":       event.ID,
			"event_type":     string(event.Type),
			"transaction_id": id,
		})
		return entity.Success("transaction not found"), nil
	}
	if id != 0 {
		return entity.Outcome{}, &locatedError{transactionID: id, err: err}
	}
	return entity.Outcome{}, err
}

// locatedError carries the transaction a handler failure belongs to
type locatedError struct {
	transactionID uint64
	err           error
}

func (e *locatedError) Error() string { return e.err.Error() }

func (e *locatedError) Unwrap() error { return e.err }

// transactionIDOf returns the transaction a handler failure was located on, zero when none
func transactionIDOf(err error) uint64 {
	var located *locatedError
	if errors.As(err, &located) {
		return located.transactionID
	}
	return 0
}

func mergeFields(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
