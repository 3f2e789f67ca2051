// Package filter turns known database request errors into HTTP responses
// or GraphQL errors.
package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"

	"github.com/godamri/helix-db/database"
	"github.com/godamri/helix-db/http/response"
)

var ErrUnsupportedHost = errors.New("helix-db/filter: unsupported host")

// DefaultStatusCodes returns a fresh copy of the built-in code to status table.
func DefaultStatusCodes() map[string]int {
	return map[string]int{
		database.CodeValueTooLong:     http.StatusBadRequest,
		database.CodeUniqueConstraint: http.StatusConflict,
		database.CodeRecordNotFound:   http.StatusNotFound,
	}
}

// Filter is safe for concurrent use; its tables never change after New.
type Filter struct {
	base        response.ErrorHandler
	statusCodes map[string]int
	messages    map[string]string
	logger      *slog.Logger
}

type options struct {
	base        response.ErrorHandler
	statusCodes map[string]int
	messages    map[string]string
	logger      *slog.Logger
}

type Option func(*options)

// WithBase sets the handler unmapped HTTP errors and mapped StatusErrors are
// handed to. A nil handler keeps the default.
func WithBase(h response.ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.base = h
		}
	}
}

// WithStatusCodes merges codes over the defaults; later entries win.
func WithStatusCodes(codes map[string]int) Option {
	return func(o *options) {
		maps.Copy(o.statusCodes, codes)
	}
}

// WithMessages merges messages over the (empty) defaults; later entries win.
func WithMessages(messages map[string]string) Option {
	return func(o *options) {
		maps.Copy(o.messages, messages)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New(opts ...Option) *Filter {
	o := options{
		statusCodes: DefaultStatusCodes(),
		messages:    map[string]string{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.With("component", "db_error_filter")
	if o.base == nil {
		o.base = response.NewDefaultErrorHandler(logger)
	}

	return &Filter{
		base:        o.base,
		statusCodes: o.statusCodes,
		messages:    o.messages,
		logger:      logger,
	}
}

// StatusCode reports the status configured for code.
func (f *Filter) StatusCode(code string) (int, bool) {
	status, ok := f.statusCodes[code]
	return status, ok
}

// Message returns the configured message for code, or one derived from raw.
func (f *Filter) Message(code, raw string) string {
	if msg, ok := f.messages[code]; ok {
		return msg
	}
	return DefaultMessage(code, raw)
}

// Handle translates err for host.
//
// For HTTP hosts the response is always written (by the base handler) and
// nil is returned. For GraphQL hosts a mapped error comes back as a
// *response.StatusError and anything else is returned untouched. Other host
// kinds yield ErrUnsupportedHost.
func (f *Filter) Handle(err error, host Host) error {
	if err == nil {
		return nil
	}

	switch host.Kind {
	case KindHTTP:
		if host.Writer == nil || host.Request == nil {
			return fmt.Errorf("%w: http host without writer or request: %w", ErrUnsupportedHost, err)
		}
	case KindGraphQL:
	default:
		return fmt.Errorf("%w %q: %w", ErrUnsupportedHost, host.Kind, err)
	}

	ctx := host.context()
	code := "none"
	status, mapped := 0, false
	known, ok := database.AsKnownRequestError(err)
	if ok {
		code = known.Code
		status, mapped = f.statusCodes[code]
	}

	if !mapped {
		dbErrorsTotal.WithLabelValues(code, host.Kind.String(), outcomeDeclined).Inc()
		f.logger.DebugContext(ctx, "error not mapped, passing through",
			"host", host.Kind.String(),
			"code", code,
			"error", err,
		)
		if host.Kind == KindHTTP {
			f.base.HandleError(host.Writer, host.Request, err)
			return nil
		}
		return err
	}

	statusErr := response.NewStatusError(status, f.Message(code, known.Message), err)

	dbErrorsTotal.WithLabelValues(code, host.Kind.String(), outcomeMapped).Inc()
	f.logger.DebugContext(ctx, "database error mapped",
		"host", host.Kind.String(),
		"code", code,
		"status", status,
	)

	if host.Kind == KindHTTP {
		f.base.HandleError(host.Writer, host.Request, statusErr)
		return nil
	}
	return statusErr
}

// HandleError makes Filter a response.ErrorHandler, so it can be installed
// wherever a base handler is expected.
func (f *Filter) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if herr := f.Handle(err, HTTP(w, r)); herr != nil {
		f.logger.ErrorContext(r.Context(), "error filter failed", "error", herr)
	}
}

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts h to net/http, routing any returned error through the filter.
func (f *Filter) Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			f.HandleError(w, r, err)
		}
	}
}
