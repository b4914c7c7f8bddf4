package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/unclebandit/storefront/internal/db"
	"github.com/unclebandit/storefront/internal/model"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, o *model.Order) error
}

type OrderRepository struct {
	DB      db.Querier
	Dialect db.Dialect
}

func NewOrderRepository(q db.Querier, dialect db.Dialect) *OrderRepository {
	return &OrderRepository{DB: q, Dialect: dialect}
}

// Create inserts the order as given. ProductID is not checked against products.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	if o.Quantity == 0 {
		o.Quantity = model.DefaultQuantity
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}

	query := `INSERT INTO orders (customer_id, product_id, quantity, order_date) VALUES (?, ?, ?, ?)`
	id, err := r.Dialect.InsertID(ctx, r.DB, query, o.CustomerID, o.ProductID, o.Quantity, o.OrderDate)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	o.ID = id
	return nil
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)
