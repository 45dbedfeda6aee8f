package server

import (
	"context"
	"errors"
	"log/slog"
)

// Shutdown stops the HTTP server, then the modules in reverse boot order, then
// the services held by the injector.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
			errs = append(errs, err)
		}
	}
	if s.injector != nil {
		s.injector.Shutdown()
	}
	return errors.Join(errs...)
}
