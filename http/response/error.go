package response

import (
	"errors"
	"log/slog"
	"net/http"
)

// StatusError is an error that already knows its HTTP status and the
// message clients should see.
type StatusError struct {
	StatusCode int
	Message    string
	Err        error
}

func NewStatusError(status int, message string, cause error) *StatusError {
	return &StatusError{StatusCode: status, Message: message, Err: cause}
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// Body returns the payload clients receive for e.
func (e *StatusError) Body() Body {
	return Body{StatusCode: e.StatusCode, Message: e.Message}
}

// ErrorHandler writes the response for an error raised while handling r.
type ErrorHandler interface {
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

func (f ErrorHandlerFunc) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	f(w, r, err)
}

// DefaultErrorHandler is the base behavior: StatusErrors are written as-is,
// anything else becomes an opaque 500.
type DefaultErrorHandler struct {
	Logger *slog.Logger
}

func NewDefaultErrorHandler(logger *slog.Logger) *DefaultErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultErrorHandler{Logger: logger}
}

func (h *DefaultErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		Status(w, statusErr.StatusCode, statusErr.Message)
		return
	}

	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	// Do not leak internals to the client.
	logger.ErrorContext(r.Context(), "unhandled error",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
	)
	Status(w, http.StatusInternalServerError, "Internal server error")
}
