// internal/controller/product_controller.go
package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/unclebandit/storefront/internal/model"
)

type CatalogLister interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type ProductController struct {
	Catalog CatalogLister
	Logger  *slog.Logger
}

func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.Catalog.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}
