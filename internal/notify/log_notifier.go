// Package notify holds notification stand-ins that satisfy order.Notifier
// without talking to a real email or SMS provider.
package notify

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

var _ order.Notifier = (*LogNotifier)(nil)

// Message is a notification accepted by a LogNotifier.
type Message struct {
	Channel Channel   `json:"channel"`
	To      string    `json:"to"`
	Subject string    `json:"subject,omitempty"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

// LogNotifier writes one log line per message and keeps the most recent
// messages in memory.
type LogNotifier struct {
	logger *zap.Logger
	keep   int
	now    func() time.Time

	mu   sync.Mutex
	sent []Message
}

// NewLogNotifier returns a notifier that remembers up to keep messages.
// keep <= 0 disables recording.
func NewLogNotifier(logger *zap.Logger, keep int) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{
		logger: logger,
		keep:   keep,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (n *LogNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	return n.send(ctx, Message{Channel: ChannelEmail, To: to, Subject: subject, Body: body})
}

func (n *LogNotifier) SendSMS(ctx context.Context, to, body string) error {
	return n.send(ctx, Message{Channel: ChannelSMS, To: to, Body: body})
}

// Sent returns the recorded messages, oldest first.
func (n *LogNotifier) Sent() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Message, len(n.sent))
	copy(out, n.sent)
	return out
}

func (n *LogNotifier) send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(m.To) == "" {
		return order.ErrNoRecipient
	}
	m.SentAt = n.now()

	n.logger.Info("notification sent",
		zap.String("channel", string(m.Channel)),
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.Int("bodyLength", len(m.Body)),
	)

	if n.keep <= 0 {
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, m)
	if over := len(n.sent) - n.keep; over > 0 {
		n.sent = append([]Message(nil), n.sent[over:]...)
	}
	return nil
}
