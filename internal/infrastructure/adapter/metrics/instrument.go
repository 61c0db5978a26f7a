package metrics

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/entity"
	errs "github.com/amirhossein-jamali/marketplace-payments/internal/domain/error"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/publisher"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/usecase"
)

type webhookUseCase struct {
	next    usecase.WebhookUseCase
	metrics *Metrics
}

// InstrumentWebhooks counts webhook outcomes and rejections
func InstrumentWebhooks(next usecase.WebhookUseCase, m *Metrics) usecase.WebhookUseCase {
	return &webhookUseCase{next: next, metrics: m}
}

func (w *webhookUseCase) Handle(ctx context.Context, payload []byte, signatureHeader string, channel entity.Channel) (entity.Outcome, error) {
	outcome, err := w.next.Handle(ctx, payload, signatureHeader, channel)
	if err != nil {
		w.metrics.WebhookRejections.WithLabelValues(string(channel)).Inc()
		return outcome, err
	}
	w.metrics.WebhookOutcomes.WithLabelValues(string(channel), string(outcome.Status)).Inc()
	return outcome, nil
}

type checkoutUseCase struct {
	usecase.CheckoutUseCase
	metrics *Metrics
}

// InstrumentCheckout counts checkout attempts by result
func InstrumentCheckout(next usecase.CheckoutUseCase, m *Metrics) usecase.CheckoutUseCase {
	return &checkoutUseCase{CheckoutUseCase: next, metrics: m}
}

func (c *checkoutUseCase) StartCheckout(ctx context.Context, listingID, buyerUserID uint64) (*usecase.CheckoutResult, error) {
	result, err := c.CheckoutUseCase.StartCheckout(ctx, listingID, buyerUserID)
	c.metrics.Checkouts.WithLabelValues(checkoutResult(err)).Inc()
	return result, err
}

func checkoutResult(err error) string {
	if err == nil {
		return "started"
	}
	return strings.ToLower(string(errs.KindOf(err)))
}

type eventPublisher struct {
	next    publisher.EventPublisher
	metrics *Metrics
}

// InstrumentPublisher counts published field changes and publish failures
func InstrumentPublisher(next publisher.EventPublisher, m *Metrics) publisher.EventPublisher {
	return &eventPublisher{next: next, metrics: m}
}

func (p *eventPublisher) PublishTransactionChanged(ctx context.Context, event publisher.TransactionChanged) error {
	for _, change := range event.Changes {
		p.metrics.TransactionChanges.WithLabelValues(string(change.Field), string(event.ChangedBy)).Inc()
	}
	if err := p.next.PublishTransactionChanged(ctx, event); err != nil {
		p.metrics.PublishFailures.Inc()
		return err
	}
	return nil
}

func (p *eventPublisher) Close() error {
	return p.next.Close()
}
