package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/signon/internal/app"
	"github.com/nfrund/signon/internal/config"
	"github.com/nfrund/signon/internal/middleware"
	"github.com/nfrund/signon/internal/module"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	injector do.Injector
	modules  []module.Module
}

// New creates a new Server instance and boots every application module on it.
func New(ctx context.Context, cfg config.Provider, injector do.Injector) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)

	// Flash messages ride in a cookie session.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	setupErrorHandling(e)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
	}
	s.RegisterRoutes()

	modules, err := app.NewModules(injector)
	if err != nil {
		return nil, fmt.Errorf("failed to build modules: %w", err)
	}
	root := e.Group("")
	for _, m := range modules {
		if err := m.Boot(ctx, root); err != nil {
			return nil, fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
		s.modules = append(s.modules, m)
	}

	return s, nil
}
