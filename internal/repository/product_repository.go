// internal/repository/product_repository.go
package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/unclebandit/storefront/internal/db"
	"github.com/unclebandit/storefront/internal/model"
)

// ProductRepositoryInterface defines methods used by the catalog service
type ProductRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Product, error)
}

type ProductRepository struct {
	DB      db.Querier
	Dialect db.Dialect
}

func NewProductRepository(q db.Querier, dialect db.Dialect) *ProductRepository {
	return &ProductRepository{DB: q, Dialect: dialect}
}

// ListAll fetches the whole catalog in id order
func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `
        SELECT id, name, description, price, image_url
        FROM products
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate products")
	}
	return products, nil
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
