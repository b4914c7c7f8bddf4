// internal/service/catalog_service.go
package service

import (
	"context"

	appErrors "github.com/unclebandit/storefront/internal/errors"
	"github.com/unclebandit/storefront/internal/model"
	"github.com/unclebandit/storefront/internal/repository"
)

type CatalogService struct {
	Products repository.ProductRepositoryInterface
}

// ListProducts returns the full catalog, unfiltered and unpaginated.
func (s *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.Products.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewStorageError("list products", err)
	}
	return products, nil
}
