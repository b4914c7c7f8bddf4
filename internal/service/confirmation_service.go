package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/unclebandit/storefront/internal/model"
	"github.com/unclebandit/storefront/internal/queue"
)

const DefaultConfirmationTemplate = "Hi {name}, your order #{order_id} for {quantity} x product #{product_id} has been received."

// Sender delivers a rendered confirmation to a customer.
type Sender interface {
	Send(ctx context.Context, to, message string) error
}

// LogSender writes confirmations to the log instead of sending mail.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, to, message string) error {
	s.Logger.InfoContext(ctx, "order confirmation", "to", to, "message", message)
	return nil
}

// ConfirmationService turns order-placed events into customer confirmations.
type ConfirmationService struct {
	Sender   Sender
	Template string
	Logger   *slog.Logger
}

// Subscribe registers Handle on topic.
func (s *ConfirmationService) Subscribe(q queue.Queue, topic string) error {
	return q.Subscribe(topic, s.Handle)
}

// Handle accepts the event as delivered by either queue implementation.
// Undecodable payloads are dropped rather than retried.
func (s *ConfirmationService) Handle(payload any) error {
	event, err := DecodeOrderPlaced(payload)
	if err != nil {
		s.Logger.Error("dropping order event", "error", err)
		return nil
	}

	message := s.Render(event)
	if err := s.Sender.Send(context.Background(), event.CustomerEmail, message); err != nil {
		return fmt.Errorf("send confirmation for order %d: %w", event.OrderID, err)
	}
	s.Logger.Debug("confirmation sent", "order_id", event.OrderID, "event_id", event.EventID)
	return nil
}

func (s *ConfirmationService) Render(event model.OrderPlacedEvent) string {
	template := s.Template
	if template == "" {
		template = DefaultConfirmationTemplate
	}
	return RenderTemplate(template, map[string]string{
		"name":       event.CustomerName,
		"order_id":   strconv.FormatInt(event.OrderID, 10),
		"quantity":   strconv.FormatInt(event.Quantity, 10),
		"product_id": strconv.FormatInt(event.ProductID, 10),
	})
}

// DecodeOrderPlaced accepts an event value, a pointer to one, or its JSON encoding.
func DecodeOrderPlaced(payload any) (model.OrderPlacedEvent, error) {
	var event model.OrderPlacedEvent
	switch p := payload.(type) {
	case model.OrderPlacedEvent:
		return p, nil
	case *model.OrderPlacedEvent:
		if p == nil {
			return event, fmt.Errorf("nil order event")
		}
		return *p, nil
	case []byte:
		if err := json.Unmarshal(p, &event); err != nil {
			return event, fmt.Errorf("decode order event: %w", err)
		}
		return event, nil
	case json.RawMessage:
		return DecodeOrderPlaced([]byte(p))
	}
	return event, fmt.Errorf("unexpected order event payload %T", payload)
}
