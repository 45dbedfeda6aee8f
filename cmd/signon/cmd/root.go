package cmd

import (
	"os"

	"github.com/nfrund/signon/internal/app"
	"github.com/nfrund/signon/internal/config"
	"github.com/nfrund/signon/internal/logging"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signon",
	Short: "Sign-in and registration front end",
	Long: `signon serves a combined sign-in/registration page and forwards the
credentials to the configured identity service.

Available commands:
  serve     Run the HTTP server
  signup    Create an account with the identity service
  signin    Sign in with the identity service

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads configuration, installs the logger and builds the injector.
func bootstrap() (*config.Config, do.Injector, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())
	return cfg, app.NewContainer(cfg, afero.NewOsFs()), nil
}
