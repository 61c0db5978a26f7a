package entity

import "time"

// Channel identifies which webhook endpoint, and therefore which signing secret, delivered an event
type Channel string

// Webhook channels
const (
	ChannelPayment  Channel = "payment"
	ChannelConnect  Channel = "connect"
	ChannelTransfer Channel = "transfer"
	ChannelNone     Channel = ""
)

// IsValid reports whether c names a configured webhook channel
func (c Channel) IsValid() bool {
	return c == ChannelPayment || c == ChannelConnect || c == ChannelTransfer
}

// EventType is a processor event type string
type EventType string

// Event types the dispatcher handles
const (
	EventCheckoutSessionCompleted   EventType = "checkout.session.completed"
	EventCheckoutSessionExpired     EventType = "checkout.session.expired"
	EventPaymentIntentSucceeded     EventType = "payment_intent.succeeded"
	EventPaymentIntentPaymentFailed EventType = "payment_intent.payment_failed"
	EventChargeRefunded             EventType = "charge.refunded"
	EventAccountUpdated             EventType = "account.updated"
	EventTransferCreated            EventType = "transfer.created"
	EventTransferReversed           EventType = "transfer.reversed"
)

// OutcomeStatus is the body status returned to the processor
type OutcomeStatus string

// Outcome statuses
const (
	OutcomeSuccess  OutcomeStatus = "success"
	OutcomeReceived OutcomeStatus = "received"
	OutcomeError    OutcomeStatus = "error"
)

// Outcome is the result of handling one webhook delivery
type Outcome struct {
	Status  OutcomeStatus
	Message string
}

// Success builds a handled outcome
func Success(message string) Outcome {
	return Outcome{Status: OutcomeSuccess, Message: message}
}

// Received builds an acknowledged but unhandled outcome
func Received(message string) Outcome {
	return Outcome{Status: OutcomeReceived, Message: message}
}

// Failed builds a soft error outcome. The delivery is still acknowledged.
func Failed(message string) Outcome {
	return Outcome{Status: OutcomeError, Message: message}
}

// WebhookEvent is the ledger row of a verified delivery, keyed by the processor's event id
type WebhookEvent struct {
	ID              uint64
	EventID         string
	Type            EventType
	Channel         Channel
	Payload         []byte
	ProcessedAt     *time.Time
	ProcessingError string
	CreatedAt       time.Time
}

// IsProcessed reports whether the event was already handled successfully
func (e *WebhookEvent) IsProcessed() bool {
	return e.ProcessedAt != nil
}

// MarkProcessed records a successful handling
func (e *WebhookEvent) MarkProcessed(at time.Time) {
	e.ProcessedAt = &at
	e.ProcessingError = ""
}

// MarkFailed records a failed handling so the next retry is attempted again
func (e *WebhookEvent) MarkFailed(reason string) {
	e.ProcessedAt = nil
	e.ProcessingError = reason
}
