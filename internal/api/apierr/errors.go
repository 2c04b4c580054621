package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/playtime/internal/model"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error codes. This set is closed; clients switch on these values.
const (
	CodeRecaptchaInvalid = "RECAPTCHA/INVALID"
	CodeRiotNotFound     = "RIOT/NOT_FOUND"
	CodeRiotServerError  = "RIOT/SERVER_ERROR"
	CodeAPIServerError   = "API/SERVER_ERROR"
)

// httpError combines an HTTP status code with an error code
type httpError struct {
	status int
	code   string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.code
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.code})
}

// Resolve returns the HTTP status and error code err maps to
func Resolve(err error) (int, string) {
	he := toHTTPError(err)
	return he.status, he.code
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrVerificationFailed):
		return &httpError{http.StatusUnauthorized, CodeRecaptchaInvalid}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, CodeRiotNotFound}
	case errors.Is(err, model.ErrUpstream):
		return &httpError{http.StatusInternalServerError, CodeRiotServerError}
	default:
		return &httpError{http.StatusInternalServerError, CodeAPIServerError}
	}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, CodeAPIServerError}
}
