package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/unclebandit/storefront/internal/model"
)

const placeholderImage = "https://via.placeholder.com/150"

// Catalog is the fixed product list written at startup.
var Catalog = []model.Product{
	{Name: "Smart Watch", Description: "Feature-rich smart watch", Price: decimal.RequireFromString("399.99"), ImageURL: placeholderImage},
	{Name: "Neckband", Description: "Comfortable neckband with clear sound", Price: decimal.RequireFromString("150.50"), ImageURL: placeholderImage},
	{Name: "Sneakers", Description: "Trendy sneakers for all-day wear", Price: decimal.RequireFromString("200.00"), ImageURL: placeholderImage},
	{Name: "Earpods", Description: "Wireless earpods with great sound", Price: decimal.RequireFromString("399.00"), ImageURL: placeholderImage},
}

// Seed inserts Catalog when the products table is empty and reports how many rows it wrote.
func (s *Store) Seed(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	if count > 0 {
		return 0, nil
	}

	err := s.WithTx(ctx, func(tx Querier) error {
		query := s.Dialect.Rebind(`INSERT INTO products (name, description, price, image_url) VALUES (?, ?, ?, ?)`)
		for _, p := range Catalog {
			if _, err := tx.ExecContext(ctx, query, p.Name, p.Description, p.Price, p.ImageURL); err != nil {
				return errors.Wrapf(err, "seed product %q", p.Name)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(Catalog), nil
}
