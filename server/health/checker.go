package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/godamri/helix-db/database"
)

// Checker handles the health check endpoints.
type Checker struct {
	db      *database.Service
	logger  *slog.Logger
	timeout time.Duration
}

// NewChecker reads the client through the database service on every probe,
// so a swapped client is picked up.
func NewChecker(db *database.Service, logger *slog.Logger) *Checker {
	return &Checker{
		db:      db,
		logger:  logger,
		timeout: 200 * time.Millisecond,
	}
}

func (c *Checker) RegisterRoutes(r chi.Router) {
	r.Get("/health", c.HandleHealth)   // Liveness
	r.Get("/ready", c.HandleReadiness) // Readiness
}

// HandleHealth returns 200 OK while the process is running.
func (c *Checker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// HandleReadiness pings the database. A slow database counts as down.
func (c *Checker) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	status := "UP"
	statusCode := http.StatusOK

	if c.db == nil || c.db.Client == nil {
		c.logger.ErrorContext(ctx, "readiness check failed: no database client registered")
		status = "DOWN"
		statusCode = http.StatusServiceUnavailable
	} else if err := c.db.Client.PingContext(ctx); err != nil {
		c.logger.ErrorContext(ctx, "readiness check failed: database unreachable or slow", "error", err)
		status = "DOWN"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": status, "db": status}); err != nil {
		c.logger.Error("failed to write health response", "error", err)
	}
}
