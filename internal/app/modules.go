package app

import (
	"github.com/nfrund/signon/internal/module"
	"github.com/nfrund/signon/internal/modules/audittrail"
	"github.com/nfrund/signon/internal/modules/signon"
	"github.com/samber/do/v2"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(i do.Injector) ([]module.Module, error) {
	signonCfg, err := signonDeps(i)
	if err != nil {
		return nil, err
	}

	return []module.Module{
		// Subscribers boot before the routes that publish to them.
		audittrail.New(audittrailDeps(i)),
		signon.New(signonCfg),
	}, nil
}
