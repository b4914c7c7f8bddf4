package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/unclebandit/storefront/internal/config"
	"github.com/unclebandit/storefront/internal/logging"
	"github.com/unclebandit/storefront/internal/model"
	"github.com/unclebandit/storefront/internal/server"
)

func newApp(t *testing.T) (*server.App, *httptest.Server) {
	t.Helper()
	cfg := config.Default()
	cfg.PublicDir = t.TempDir()

	app, err := server.New(context.Background(), cfg, logging.Discard())
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	srv := httptest.NewServer(app.Handler)
	t.Cleanup(func() {
		srv.Close()
		app.Close()
	})
	return app, srv
}

func getProducts(t *testing.T, baseURL string) []model.Product {
	t.Helper()
	resp, err := http.Get(baseURL + "/products")
	if err != nil {
		t.Fatalf("GET /products: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	return products
}

func TestStorefrontRoundTrip(t *testing.T) {
	app, srv := newApp(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("unexpected page response %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}

	products := getProducts(t, srv.URL)
	if len(products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(products))
	}

	body := `{"name":"Ada","email":"ada@example.com","phone":"555","address":"1 Loop St","product_id":"1","quantity":1}`
	resp, err = http.Post(srv.URL+"/place-order", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var res map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res["message"] != "Order placed successfully!" {
		t.Errorf("unexpected response %v", res)
	}

	var orders int
	if err := app.Store.DB.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&orders); err != nil {
		t.Fatal(err)
	}
	if orders != 1 {
		t.Errorf("expected 1 order, got %d", orders)
	}

	resp, err = http.Get(srv.URL + "/debug/latency")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var latency map[string]map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&latency); err != nil {
		t.Fatal(err)
	}
	if latency["POST /place-order"]["count"] != 1 {
		t.Errorf("expected place-order latency to be recorded, got %v", latency)
	}
}

func TestRestartResetsCatalog(t *testing.T) {
	_, first := newApp(t)
	resp, err := http.Post(first.URL+"/place-order", "application/json",
		strings.NewReader(`{"name":"A","email":"a@x","phone":"1","address":"x","product_id":1}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	app, second := newApp(t)
	if n := len(getProducts(t, second.URL)); n != 4 {
		t.Errorf("expected 4 products after restart, got %d", n)
	}
	for _, table := range []string{"customers", "orders"} {
		var n int
		if err := app.Store.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Errorf("expected empty %s after restart, got %d", table, n)
		}
	}
}
