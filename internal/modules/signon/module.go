package signon

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signon/internal/handlers"
	"github.com/nfrund/signon/internal/middleware"
	"github.com/nfrund/signon/internal/module"
)

// Module serves the sign-in/registration page and its form endpoints.
type Module struct {
	module.BaseModule
	handler   *handlers.AuthHandler
	rateLimit float64
}

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Handler *handlers.AuthHandler
	// RateLimit is requests per second per client IP on the form endpoints.
	RateLimit float64
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{
		handler:   deps.Handler,
		rateLimit: deps.RateLimit,
	}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "signon"
}

// Boot mounts the page and form routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group) error {
	slog.Info("Booting signon module: setting up routes", "rate_limit", m.rateLimit)
	m.handler.Mount(g, middleware.RateLimiter(m.rateLimit))
	return nil
}
