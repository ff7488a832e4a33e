package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/correlation"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

const publishTimeout = 3 * time.Second

var _ order.Notifier = (*NotificationPublisher)(nil)

// NotificationPublisher satisfies order.Notifier by enqueueing a
// NotificationRequested event per message. Delivery is left to whatever
// consumes the routing keys.
type NotificationPublisher struct {
	ch       Channel
	producer string
	logger   *zap.Logger

	newID func() string
	now   func() time.Time
}

type PublisherOptions struct {
	Producer string
	Logger   *zap.Logger
}

// OpenNotificationPublisher opens a channel on conn and declares the events
// exchange on it.
func OpenNotificationPublisher(conn *amqp.Connection, opts PublisherOptions) (*NotificationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := NewNotificationPublisher(ch, opts)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	return p, nil
}

func NewNotificationPublisher(ch Channel, opts PublisherOptions) (*NotificationPublisher, error) {
	if err := declareEventsExchange(ch); err != nil {
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}

	producer := opts.Producer
	if producer == "" {
		producer = storefrontServiceName
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NotificationPublisher{
		ch:       ch,
		producer: producer,
		logger:   logger,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (p *NotificationPublisher) Close() error {
	return p.ch.Close()
}

func (p *NotificationPublisher) SendEmail(ctx context.Context, to, subject, body string) error {
	return p.publish(ctx, NotificationRequested{
		Channel: NotificationEmail,
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

func (p *NotificationPublisher) SendSMS(ctx context.Context, to, body string) error {
	return p.publish(ctx, NotificationRequested{
		Channel: NotificationSMS,
		To:      to,
		Body:    body,
	})
}

func (p *NotificationPublisher) publish(ctx context.Context, payload NotificationRequested) error {
	if strings.TrimSpace(payload.To) == "" {
		return order.ErrNoRecipient
	}

	ev := p.newEvent(ctx, payload)
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal NotificationRequested envelope: %w", err)
	}

	key := routingKeyFor(payload.Channel)
	if err := p.publishJSON(ctx, key, ev.EventID, body); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	p.logger.Debug("notification requested",
		zap.String("eventId", ev.EventID),
		zap.String("routingKey", key),
		zap.String("correlationId", ev.CorrelationID),
	)
	return nil
}

func (p *NotificationPublisher) newEvent(ctx context.Context, payload NotificationRequested) NotificationRequestedEvent {
	now := p.now()
	payload.RequestedAt = now
	return NotificationRequestedEvent{
		EventName:     EventTypeNotificationRequested,
		EventVersion:  1,
		EventID:       p.newID(),
		CorrelationID: correlation.ID(ctx),
		Producer:      p.producer,
		PartitionKey:  payload.To,
		OccurredAt:    now,
		Schema:        notificationRequestedSchema,
		Payload:       payload,
	}
}

func (p *NotificationPublisher) publishJSON(ctx context.Context, routingKey, messageID string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Body:         body,
		},
	)
}
