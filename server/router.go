package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/godamri/helix-db/http/response"
	"github.com/godamri/helix-db/server/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the base router. errs becomes the global error handler:
// panics carrying an error are routed through it.
func NewRouter(serviceName string, logger *slog.Logger, errs response.ErrorHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.TraceIDMiddleware)
	r.Use(middleware.OTelMiddleware(serviceName, r))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.PanicRecovery(errs))
	r.Use(middleware.SecurityHeaders)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
