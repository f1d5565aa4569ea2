package cli

import (
	"github.com/hashicorp/go-plugin"
	"github.com/spf13/cobra"

	"github.com/jfrconley/decky-colorblind/internal/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the backend to the plugin loader over RPC",
	Long: `Serve runs the backend as a go-plugin RPC server for the settings
frontend. The loader starts this process and calls the three backend
operations: read_configuration, update_configuration and
apply_configuration.

This command is not meant to be run interactively; without the plugin
handshake environment it exits immediately.`,
	RunE: runServe,
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger("colorblind")

	orch, store, err := newOrchestrator(logger)
	if err != nil {
		return err
	}
	svc := api.NewService(store, orch, logger)

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: api.Handshake,
		Plugins: map[string]plugin.Plugin{
			api.BackendPluginName: &api.BackendPlugin{Impl: svc},
		},
		Logger: logger,
	})
	return nil
}
