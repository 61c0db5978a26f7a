package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	coreport "github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/core"
	"github.com/amirhossein-jamali/marketplace-payments/internal/domain/port/publisher"
)

const (
	defaultHeartbeat   = 10 * time.Second
	defaultLocale      = "en_US"
	defaultDialTimeout = 3 * time.Second
	contentTypeJSON    = "application/json"
	exchangeKind       = "topic"
	routingKeyPrefix   = "transaction."
)

// ErrNotConnected is returned while the broker connection is being re-established
var ErrNotConnected = errors.New("amqp: not connected")

// channel is the subset of *amqp.Channel used for publishing
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Config holds broker settings
type Config struct {
	URI      string
	Exchange string
}

// Publisher publishes transaction changes to a topic exchange
type Publisher struct {
	uri          string
	exchange     string
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	mu          sync.RWMutex
	conn        *amqp.Connection
	ch          channel
	notifyClose chan *amqp.Error
	done        chan struct{}
	closeOnce   sync.Once
}

var _ publisher.EventPublisher = (*Publisher)(nil)

// Dial connects to the broker, declares the exchange and starts the reconnection loop
func Dial(config Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Publisher, error) {
	p := &Publisher{
		uri:          config.URI,
		exchange:     config.Exchange,
		logger:       logger,
		timeProvider: timeProvider,
		done:         make(chan struct{}),
	}
	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	go p.reconnectionLoop()

	logger.Info("Connected to message broker", map[string]any{"exchange": config.Exchange})
	return p, nil
}

func newPublisher(ch channel, exchange string, logger coreport.Logger, timeProvider coreport.TimeProvider) *Publisher {
	return &Publisher{
		exchange:     exchange,
		logger:       logger,
		timeProvider: timeProvider,
		ch:           ch,
		done:         make(chan struct{}),
	}
}

func (p *Publisher) connect() error {
	conn, err := amqp.DialConfig(p.uri, amqp.Config{
		Heartbeat: defaultHeartbeat,
		Locale:    defaultLocale,
		Dial:      amqp.DefaultDial(defaultDialTimeout),
	})
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	if err := ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return err
	}

	notifyClose := make(chan *amqp.Error, 1)
	conn.NotifyClose(notifyClose)

	p.mu.Lock()
	p.conn = conn
	p.ch = ch
	p.notifyClose = notifyClose
	p.mu.Unlock()
	return nil
}

func (p *Publisher) reconnectionLoop() {
	for {
		p.mu.RLock()
		notifyClose := p.notifyClose
		p.mu.RUnlock()

		select {
		case <-p.done:
			return
		case amqpErr, ok := <-notifyClose:
			if !ok && amqpErr == nil {
				select {
				case <-p.done:
					return
				default:
				}
			}

			fields := map[string]any{}
			if amqpErr != nil {
				fields["error"] = amqpErr.Error()
			}
			p.logger.Warn("Message broker connection lost, reconnecting", fields)

			p.mu.Lock()
			p.ch = nil
			p.mu.Unlock()

			b := backoff.NewExponentialBackOff()
			b.MaxInterval = 10 * time.Second
			b.MaxElapsedTime = time.Minute

			if err := backoff.Retry(p.connect, b); err != nil {
				p.logger.Error("Giving up on message broker reconnection", map[string]any{"error": err.Error()})
				return
			}
			p.logger.Info("Reconnected to message broker", nil)
		}
	}
}

// RoutingKey returns the routing key for a transaction status, e.g. transaction.completed
func RoutingKey(status string) string {
	return routingKeyPrefix + strings.ToLower(status)
}

// PublishTransactionChanged publishes the event as JSON
func (p *Publisher) PublishTransactionChanged(ctx context.Context, event publisher.TransactionChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode transaction event: %w", err)
	}

	p.mu.RLock()
	ch := p.ch
	p.mu.RUnlock()
	if ch == nil {
		return ErrNotConnected
	}

	key := RoutingKey(event.TransactionStatus)
	err = ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    p.timeProvider.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	p.logger.Debug("Published transaction event", map[string]any{
		"transaction_id": event.TransactionID,
		"routing_key":    key,
	})
	return nil
}

// Close stops the reconnection loop and closes the connection
func (p *Publisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.ch != nil {
			err = p.ch.Close()
			p.ch = nil
		}
		if p.conn != nil {
			if cerr := p.conn.Close(); cerr != nil && !errors.Is(cerr, amqp.ErrClosed) {
				err = cerr
			}
		}
	})
	return err
}
