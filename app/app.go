package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Runner owns the process lifecycle: signals in, exit code out.
type Runner struct {
	Logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{Logger: logger}
}

// Run calls fn with a context cancelled on SIGTERM/SIGINT and returns the
// process exit code.
func (r *Runner) Run(fn func(ctx context.Context) error) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.Logger.Info("Service starting...")

	if err := fn(ctx); err != nil {
		r.Logger.Error("Service stopped with error", "error", err)
		return 1
	}

	r.Logger.Info("Service shutdown complete.")
	return 0
}
