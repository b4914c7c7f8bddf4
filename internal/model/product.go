// internal/model/product.go
package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Products are seeded once and never modified.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	ImageURL    string          `db:"image_url" json:"image_url"`
}

// MarshalJSON writes the price as a JSON number rather than decimal's quoted default.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Price json.Number `json:"price"`
	}{
		alias: alias(p),
		Price: json.Number(p.Price.String()),
	})
}
