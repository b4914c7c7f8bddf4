package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestRecordAndSnapshot(t *testing.T) {
	r := NewRecorder()
	for i := 1; i <= 100; i++ {
		r.Record("GET /products", time.Duration(i)*time.Millisecond)
	}
	r.Record("GET /products", 0)
	r.Record("GET /products", 2*time.Minute)

	s, ok := r.Snapshot()["GET /products"]
	if !ok {
		t.Fatal("missing route in snapshot")
	}
	if s.Count != 102 {
		t.Errorf("expected 102 observations, got %d", s.Count)
	}
	if s.P50 < 49_000 || s.P50 > 52_000 {
		t.Errorf("p50 out of range: %d", s.P50)
	}
	if s.Max < 59_000_000 {
		t.Errorf("expected clamped max near 60s, got %d", s.Max)
	}
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	rec := NewRecorder()
	router := chi.NewRouter()
	router.Use(rec.Middleware)
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {})
	router.Get("/debug/latency", rec.ServeHTTP)

	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/latency", nil))

	var got map[string]Summary
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["GET /items/{id}"].Count != 2 {
		t.Errorf("expected 2 requests for /items/{id}, got %+v", got)
	}
	if got["GET unmatched"].Count != 1 {
		t.Errorf("expected 1 unmatched request, got %+v", got)
	}
}
