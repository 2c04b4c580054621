package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/playtime/internal/api/apierr"
	"github.com/mcoot/playtime/internal/middleware"
	"github.com/mcoot/playtime/internal/monitoring"
)

// Re-export from apierr for convenience
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeRecaptchaInvalid = apierr.CodeRecaptchaInvalid
	CodeRiotNotFound     = apierr.CodeRiotNotFound
	CodeRiotServerError  = apierr.CodeRiotServerError
	CodeAPIServerError   = apierr.CodeAPIServerError
)

// WriteError writes an error response, reporting server-side failures
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := apierr.Resolve(err)
	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"code":       code,
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": middleware.RequestIDFromContext(r.Context()),
		}
		logger.Error("request failed",
			slog.String("code", code),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
		)
		monitoring.CaptureError(err, fields)
	}
	apierr.WriteError(w, err)
}
