// internal/service/order_service.go
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/unclebandit/storefront/internal/db"
	appErrors "github.com/unclebandit/storefront/internal/errors"
	"github.com/unclebandit/storefront/internal/model"
	"github.com/unclebandit/storefront/internal/queue"
	"github.com/unclebandit/storefront/internal/repository"
)

// OrderPlacedMessage is returned to the client for every successful order.
const OrderPlacedMessage = "Order placed successfully!"

// PlaceOrderInput carries the contact details and the ordered product.
// A zero Quantity means the caller did not specify one.
type PlaceOrderInput struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	ProductID int64
	Quantity  int64
}

type PlaceOrderResult struct {
	Message    string
	CustomerID int64
	OrderID    int64
}

type OrderService struct {
	Store *db.Store
	// Queue is optional; without it no order events are emitted.
	Queue  queue.Queue
	Topic  string
	Logger *slog.Logger
}

// PlaceOrder records a new customer and an order for it in one transaction.
// Nothing is validated: contact fields, quantity and product id are stored as given.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	customer := &model.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	order := &model.Order{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}

	err := s.Store.WithTx(ctx, func(tx db.Querier) error {
		if err := repository.NewCustomerRepository(tx, s.Store.Dialect).Create(ctx, customer); err != nil {
			return err
		}
		order.CustomerID = customer.ID
		return repository.NewOrderRepository(tx, s.Store.Dialect).Create(ctx, order)
	})
	if err != nil {
		return nil, appErrors.NewStorageError("place order", err)
	}

	s.publish(customer, order)

	return &PlaceOrderResult{
		Message:    OrderPlacedMessage,
		CustomerID: customer.ID,
		OrderID:    order.ID,
	}, nil
}

// publish runs after commit, so a failure here is logged and the order stands.
func (s *OrderService) publish(customer *model.Customer, order *model.Order) {
	if s.Queue == nil {
		return
	}
	event := model.OrderPlacedEvent{
		EventID:       uuid.New(),
		OrderID:       order.ID,
		CustomerID:    customer.ID,
		ProductID:     order.ProductID,
		Quantity:      order.Quantity,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		PlacedAt:      order.OrderDate,
	}
	if err := s.Queue.Publish(s.Topic, event); err != nil {
		s.logger().Warn("failed to publish order event", "order_id", order.ID, "topic", s.Topic, "error", err)
	}
}

func (s *OrderService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
