package audittrail

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signon/internal/audit"
	"github.com/nfrund/signon/internal/module"
	"github.com/nfrund/signon/internal/pubsub"
)

// Module writes audit events from the bus to the log for the life of the server.
type Module struct {
	module.BaseModule
	subscriber pubsub.Subscriber
	logger     *audit.Logger
	cancel     context.CancelFunc
}

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Subscriber pubsub.Subscriber
	Logger     *slog.Logger
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{
		subscriber: deps.Subscriber,
		logger:     audit.NewLogger(deps.Logger),
	}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "audittrail"
}

// Boot starts the audit subscriptions. They outlive ctx and end on Shutdown.
func (m *Module) Boot(ctx context.Context, _ *echo.Group) error {
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if err := m.logger.Start(subCtx, m.subscriber); err != nil {
		cancel()
		return err
	}
	m.cancel = cancel
	return nil
}

// Shutdown stops the subscriptions.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
