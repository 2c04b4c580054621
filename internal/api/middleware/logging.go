package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/playtime/internal/middleware"
)

// Logging re-exports the shared access log middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID re-exports the shared request ID middleware for the API
func RequestID() func(http.Handler) http.Handler {
	return middleware.RequestID()
}
