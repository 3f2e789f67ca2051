package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Zero values fall back to the defaults applied in New.
type Config struct {
	Port            string        `envconfig:"HTTP_PORT" yaml:"http_port"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" yaml:"http_read_timeout"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" yaml:"http_write_timeout"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" yaml:"http_shutdown_timeout"`
}

type Server struct {
	cfg     Config
	logger  *slog.Logger
	handler http.Handler
	httpSrv *http.Server
}

func New(cfg Config, logger *slog.Logger, handler http.Handler) *Server {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 15 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Server{
		cfg:     cfg,
		logger:  logger.With("component", "http_server"),
		handler: handler,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", ":"+s.cfg.Port)
	if err != nil {
		return fmt.Errorf("helix-db/server: failed to listen: %w", err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.httpSrv = &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server starting", "addr", lis.Addr().String())
		if err := s.httpSrv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("helix-db/server: http server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server...")
		return s.shutdown()
	case err := <-errChan:
		return err
	}
}

func (s *Server) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("helix-db/server: shutdown: %w", err)
	}
	return nil
}
