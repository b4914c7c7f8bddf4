// internal/server/router.go
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unclebandit/storefront/internal/controller"
	"github.com/unclebandit/storefront/internal/handler"
	"github.com/unclebandit/storefront/internal/metrics"
)

type Routes struct {
	Products *controller.ProductController
	Orders   *controller.OrderController
	Pages    *handler.PageHandler
	Latency  *metrics.Recorder
	Logger   *slog.Logger
}

func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(rt.Logger))
	r.Use(middleware.Recoverer)
	if rt.Latency != nil {
		r.Use(rt.Latency.Middleware)
		r.Get("/debug/latency", rt.Latency.ServeHTTP)
	}

	r.Get("/", rt.Pages.Index)
	r.Get("/products", rt.Products.ListProducts)
	r.Post("/place-order", rt.Orders.PlaceOrder)
	r.Handle("/*", rt.Pages.Static())

	return r
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.InfoContext(r.Context(), "request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
