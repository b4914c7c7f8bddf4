package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/unclebandit/storefront/internal/db"
	"github.com/unclebandit/storefront/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *model.Customer) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB      db.Querier
	Dialect db.Dialect
}

func NewCustomerRepository(q db.Querier, dialect db.Dialect) *CustomerRepository {
	return &CustomerRepository{DB: q, Dialect: dialect}
}

// Create always inserts a new row; customers are never looked up or deduplicated.
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `INSERT INTO customers (name, email, phone, address) VALUES (?, ?, ?, ?)`
	id, err := r.Dialect.InsertID(ctx, r.DB, query, c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		return errors.Wrap(err, "insert customer")
	}
	c.ID = id
	return nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
