package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"

	appErrors "github.com/unclebandit/storefront/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto status codes; the cause is logged, never returned.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	switch {
	case appErrors.IsStorage(err):
		message = "storage operation failed"
	case err == appErrors.ErrInvalidBody:
		status = http.StatusBadRequest
		message = appErrors.ErrInvalidBody.Error()
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	writeJSON(w, status, map[string]string{"error": message})
}
