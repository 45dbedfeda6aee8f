package app

import (
	"log/slog"

	"github.com/nfrund/signon/internal/audit"
	"github.com/nfrund/signon/internal/config"
	"github.com/nfrund/signon/internal/domain"
	"github.com/nfrund/signon/internal/form"
	"github.com/nfrund/signon/internal/handlers"
	"github.com/nfrund/signon/internal/identity"
	"github.com/nfrund/signon/internal/modules/audittrail"
	"github.com/nfrund/signon/internal/modules/signon"
	"github.com/nfrund/signon/internal/pubsub"
	"github.com/nfrund/signon/internal/rendering"
	"github.com/nfrund/signon/internal/submit"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewContainer builds the injector holding the services shared by the modules.
// Services are created lazily on first invoke; Shutdown on the returned
// injector closes the pub/sub bridge.
func NewContainer(cfg config.Provider, fs afero.Fs) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, fs)

	do.Provide(injector, func(i do.Injector) (domain.IdentityService, error) {
		return identity.NewIdentityService(do.MustInvoke[config.Provider](i), do.MustInvoke[afero.Fs](i))
	})
	do.Provide(injector, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(injector, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(injector, func(i do.Injector) (*audit.Recorder, error) {
		return audit.NewRecorder(do.MustInvoke[*pubsub.WatermillBridge](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		svc, err := do.Invoke[domain.IdentityService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewAuthHandler(handlers.AuthDependencies{
			Identity:    svc,
			Controller:  submitController(),
			Recorder:    do.MustInvoke[*audit.Recorder](i),
			Renderer:    do.MustInvoke[rendering.Renderer](i),
			RedirectURL: do.MustInvoke[config.Provider](i).GetRedirectURL(),
		}), nil
	})

	return injector
}

// signonDeps creates the dependency struct for the signon module.
func signonDeps(i do.Injector) (signon.Dependencies, error) {
	h, err := do.Invoke[*handlers.AuthHandler](i)
	if err != nil {
		return signon.Dependencies{}, err
	}
	return signon.Dependencies{
		Handler:   h,
		RateLimit: do.MustInvoke[config.Provider](i).GetRateLimit(),
	}, nil
}

// audittrailDeps creates the dependency struct for the audittrail module.
func audittrailDeps(i do.Injector) audittrail.Dependencies {
	return audittrail.Dependencies{
		Subscriber: do.MustInvoke[*pubsub.WatermillBridge](i),
		Logger:     slog.Default().With("component", "audit"),
	}
}

func submitController() *submit.Controller {
	return submit.NewController(form.NewValidator())
}
