// internal/controller/order_controller.go
package controller

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/unclebandit/storefront/internal/errors"
	"github.com/unclebandit/storefront/internal/service"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (*service.PlaceOrderResult, error)
}

type OrderController struct {
	Orders OrderPlacer
	Logger *slog.Logger
}

// product_id and quantity arrive as numbers or as strings taken from form inputs.
type placeOrderRequest struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	ProductID json.RawMessage `json:"product_id"`
	Quantity  json.RawMessage `json:"quantity"`
}

func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var body placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, c.Logger, appErrors.ErrInvalidBody)
		return
	}

	productID, ok := lenientInt(body.ProductID)
	if !ok {
		writeError(w, r, c.Logger, appErrors.ErrInvalidBody)
		return
	}
	// Absent or malformed quantity falls through as zero, which the order repository records as 1.
	quantity, _ := lenientInt(body.Quantity)

	result, err := c.Orders.PlaceOrder(r.Context(), service.PlaceOrderInput{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Address:   body.Address,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": result.Message})
}

// lenientInt reads an integer from a JSON number or a quoted numeric string.
func lenientInt(raw json.RawMessage) (int64, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
