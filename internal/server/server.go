package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osa911/contactrelay/internal/config"
	"github.com/osa911/contactrelay/internal/logging"
	"github.com/osa911/contactrelay/internal/server/routes"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the local development HTTP server
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	handlers *routes.Handlers
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, h *routes.Handlers) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	return &Server{
		router:   gin.New(),
		cfg:      cfg,
		handlers: h,
	}
}

// Init registers middleware and routes
func (s *Server) Init() {
	logger := logging.GetGlobalLogger()
	routes.SetupGlobalMiddleware(s.router, logger, s.cfg.ServiceName)
	routes.Setup(s.router, s.handlers, s.cfg.AllowedOrigin)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Contact relay listening on http://localhost:%s", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
