// Package http provides the HTTP transport: routing, middleware, and the
// server lifecycle.
package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/api/http/middleware"
	"github.com/dtroode/marketplace-server/internal/logger"
	"github.com/dtroode/marketplace-server/internal/model"
)

var _ model.Server = (*Server)(nil)

// Server is the HTTP transport server.
type Server struct {
	app    *fiber.App
	addr   string
	logger *logger.Logger
}

// NewServer builds a fiber app with all routes mounted.
func NewServer(
	addr string,
	h Handlers,
	tokens model.TokenManager,
	ctxManager model.ContextManager,
	l *logger.Logger,
) *Server {
	app := fiber.New()

	app.Use(middleware.RequestLogger(l))

	RegisterRoutes(app, h, tokens, ctxManager)

	return &Server{
		app:    app,
		addr:   addr,
		logger: l,
	}
}

// Start listens on the configured address using the security layer's
// listener. Blocks until the listener closes.
func (s *Server) Start(securityLayer model.SecurityLayer) error {
	ln, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.logger.Info("http server listening", "address", s.addr)

	if err := s.app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop shuts the server down, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.addr
}
