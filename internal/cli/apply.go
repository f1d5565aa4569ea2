package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var applyApp string

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the stored configuration to the compositor",
	Long: `Apply reads the stored configuration for a scope, regenerates the LUT and
pushes it to gamescope. A disabled configuration clears the active LUT
instead.

Updating a configuration never applies it; this command is the explicit
commit step.

Examples:
  # Apply the global configuration
  colorblind apply

  # Apply the configuration for a specific application
  colorblind apply --app 1086940`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyApp, "app", "", "application identifier (default: global scope)")
}

// runApply executes the apply command.
func runApply(cmd *cobra.Command, args []string) error {
	logger := newLogger("colorblind")

	orch, _, err := newOrchestrator(logger)
	if err != nil {
		return err
	}

	if err := orch.Apply(cmd.Context(), applyApp); err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}
	return nil
}
