package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

// Config holds standard database configuration.
// The host loads it and owns the resulting connection.
// Zero values fall back to the defaults in NewPostgres.
type Config struct {
	DSN             string        `envconfig:"DB_DSN" yaml:"db_dsn" validate:"required"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" yaml:"db_max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" yaml:"db_max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" yaml:"db_conn_max_lifetime"`
	PingTimeout     time.Duration `envconfig:"DB_PING_TIMEOUT" yaml:"db_ping_timeout"`
}

func (c Config) withDefaults() Config {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = 15 * time.Minute
	}
	if c.PingTimeout <= 0 {
		c.PingTimeout = 5 * time.Second
	}
	return c
}

// NewPostgres opens an instrumented *sql.DB and verifies connectivity.
// The returned handle satisfies Client; closing it is the caller's job.
func NewPostgres(ctx context.Context, cfg Config, serviceName string) (*sql.DB, error) {
	cfg = cfg.withDefaults()

	db, err := otelsql.Open("pgx", cfg.DSN,
		otelsql.WithAttributes(semconv.ServiceNameKey.String(serviceName)),
		otelsql.WithDBName("postgres"),
	)
	if err != nil {
		return nil, fmt.Errorf("helix-db/database: failed to open connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("helix-db/database: failed to ping database: %w", err)
	}

	return db, nil
}
