package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/playtime/internal/api/apierr"
	"github.com/mcoot/playtime/internal/middleware"
	"github.com/mcoot/playtime/internal/monitoring"
)

// Recovery creates panic recovery middleware for the API
// Returns JSON error responses on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, r *http.Request, err any) {
	monitoring.CapturePanic(err, map[string]any{
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": middleware.RequestIDFromContext(r.Context()),
	})
	apierr.WriteError(w, apierr.NewInternalError())
}
