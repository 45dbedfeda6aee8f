package cmd

import (
	"github.com/nfrund/signon/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, injector, err := bootstrap()
		if err != nil {
			return err
		}

		s, err := server.New(cmd.Context(), cfg, injector)
		if err != nil {
			injector.Shutdown()
			return err
		}
		return s.Start(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
