package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
)

const ConfirmationSubject = "Order Confirmation"

var (
	ErrEmptyCart   = errors.New("Cannot create order with empty cart")
	// ErrNoRecipient is returned by notifiers handed an empty address.
	ErrNoRecipient = errors.New("notification recipient is empty")
)

// Notifier delivers customer-facing messages. A nil error means the message
// was accepted for delivery.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, to, body string) error
}

type Service struct {
	catalog  cart.Catalog
	notifier Notifier
	logger   *zap.Logger

	newID func() string
	now   func() time.Time
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the uuid based order id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

// NewService builds an order service. catalog must be the same catalog the
// carts passed to CreateOrder were filled from; it is used to price them.
func NewService(catalog cart.Catalog, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		notifier: notifier,
		logger:   zap.NewNop(),
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder confirms an order for the contents of c and notifies the
// customer by email and then SMS. An empty cart fails before any
// notification is attempted. Notification failures are logged, not returned.
func (s *Service) CreateOrder(ctx context.Context, c *cart.Cart, email, phone string) (Order, error) {
	if c.ItemCount() == 0 {
		return Order{}, ErrEmptyCart
	}

	total, err := c.CalculateTotal(s.catalog)
	if err != nil {
		return Order{}, fmt.Errorf("calculate total: %w", err)
	}

	o := Order{
		ID:         s.newID(),
		CustomerID: c.CustomerID(),
		Status:     StatusConfirmed,
		Email:      email,
		Phone:      phone,
		Items:      c.Items(),
		Total:      total,
		CreatedAt:  s.now(),
	}

	log := s.logger.With(zap.String("orderId", o.ID), zap.String("customerId", o.CustomerID))
	log.Info("order confirmed", zap.Int("lines", len(o.Items)), zap.Float64("total", o.Total))

	if err := s.notifier.SendEmail(ctx, email, ConfirmationSubject, confirmationEmail(o)); err != nil {
		log.Warn("send confirmation email", zap.Error(err))
	}
	if err := s.notifier.SendSMS(ctx, phone, confirmationSMS(o)); err != nil {
		log.Warn("send confirmation sms", zap.Error(err))
	}

	return o, nil
}

func confirmationEmail(o Order) string {
	return fmt.Sprintf("Thank you for shopping with us!\n\nYour order #%s has been created successfully.\nTotal: $%.2f\n", o.ID, o.Total)
}

func confirmationSMS(o Order) string {
	return fmt.Sprintf("Your order #%s has been confirmed. Total: $%.2f", o.ID, o.Total)
}
