package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/godamri/helix-db/pkg/telemetry"
	"github.com/lmittmann/tint"
)

type Config struct {
	Level  string `envconfig:"LOG_LEVEL" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Format string `envconfig:"LOG_FORMAT" yaml:"log_format" validate:"omitempty,oneof=json console"`
}

func New(cfg Config) *slog.Logger {
	return NewWriter(os.Stdout, cfg)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, cfg Config) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler

	if cfg.Format == "console" {
		// Pretty Print for Local Development
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	} else {
		// JSON for Production (Machine Readable)
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(telemetry.NewOTelHandler(handler))
}
