package amqp

import (
	"context"

	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/publisher"
)

// NoopPublisher drops events. Used when no broker is configured.
type NoopPublisher struct{}

var _ publisher.EventPublisher = NoopPublisher{}

func (NoopPublisher) PublishTransactionChanged(context.Context, publisher.TransactionChanged) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
