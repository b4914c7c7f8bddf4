// internal/model/order.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQuantity is recorded when a caller leaves quantity out.
const DefaultQuantity = 1

type Order struct {
	ID         int64     `db:"id" json:"id"`
	CustomerID int64     `db:"customer_id" json:"customer_id"`
	ProductID  int64     `db:"product_id" json:"product_id"`
	Quantity   int64     `db:"quantity" json:"quantity"`
	OrderDate  time.Time `db:"order_date" json:"order_date"`
}

// OrderPlacedEvent is published once an order and its customer are committed.
type OrderPlacedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	OrderID       int64     `json:"order_id"`
	CustomerID    int64     `json:"customer_id"`
	ProductID     int64     `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	PlacedAt      time.Time `json:"placed_at"`
}
