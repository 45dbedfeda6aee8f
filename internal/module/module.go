package module

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Module defines the contract for a self-contained application feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Boot is called once while the server is built. This is the phase for
	// setting up routes and starting background processes.
	Boot(ctx context.Context, router *echo.Group) error

	// Shutdown is called during graceful application shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides default no-op implementations for Module methods.
// Modules can embed this to avoid implementing methods they don't need.
type BaseModule struct{}

func (m *BaseModule) Boot(ctx context.Context, router *echo.Group) error {
	return nil
}

func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
