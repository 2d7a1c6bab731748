// Package app wires the reference sync server: SQLite storage, item
// handlers, middleware and the HTTP listener.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/maintkeeper/internal/cache"
	"github.com/iudanet/maintkeeper/internal/config"
	"github.com/iudanet/maintkeeper/internal/models"
	"github.com/iudanet/maintkeeper/internal/server/handlers"
	"github.com/iudanet/maintkeeper/internal/server/middleware"
	"github.com/iudanet/maintkeeper/internal/server/storage/sqlite"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
	healthPath        = "/api/v1/health"
)

// Server is the reference sync server
type Server struct {
	logger  *slog.Logger
	storage *sqlite.Storage
	handler http.Handler
	addr    string
}

// New opens the database and builds the HTTP handler
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	storage, err := sqlite.New(ctx, cfg.Server.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	readCache := cache.New[*models.RemoteItem](cache.Options{
		Capacity:   cfg.Cache.Capacity,
		DefaultTTL: cfg.Cache.DefaultTTL,
	})

	mux := http.NewServeMux()
	handlers.NewItemsHandler(logger, storage, readCache).Register(mux)
	mux.HandleFunc("GET "+healthPath, handlers.NewHealthHandler(logger, storage, version).Health)

	return &Server{
		logger:  logger,
		storage: storage,
		addr:    cfg.Server.Addr,
		handler: middleware.Chain(mux,
			middleware.RequestIDMiddleware,
			middleware.LoggingWithSkip(logger, []string{healthPath}),
			middleware.RecoveryMiddleware(logger),
		),
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is done
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is done, then shuts down
// gracefully
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// Close closes the database
func (s *Server) Close() error {
	return s.storage.Close()
}
