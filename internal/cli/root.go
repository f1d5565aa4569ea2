// Package cli provides the command-line interface for the colorblind
// backend.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jfrconley/decky-colorblind/internal/compositor"
	"github.com/jfrconley/decky-colorblind/internal/config"
	"github.com/jfrconley/decky-colorblind/internal/orchestrator"
	"github.com/jfrconley/decky-colorblind/internal/version"
)

var (
	// Global flags
	flagVerbose      bool
	flagConfigPath   string
	flagGamescopectl string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "colorblind",
		Short: "Colorblindness correction LUT backend",
		Long: `Colorblind generates 3D colour lookup tables (LUTs) that simulate or
correct colorblindness and hands them to the gamescope compositor for
real-time application to every rendered frame.

Corrections are configured per scope (globally or per application), stored
until an explicit apply, then materialised as a .cube file and pushed through
gamescopectl.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "configuration file path (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagGamescopectl, "gamescopectl", "", "gamescopectl binary path (default: "+compositor.DefaultGamescopectl+")")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. Verbose runs at debug level,
// otherwise informational and up.
func newLogger(name string) hclog.Logger {
	level := hclog.Info
	if flagVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: os.Stderr,
		Level:  level,
	})
}

// openStore resolves the configuration store from the --config flag or the
// default location.
func openStore() (*config.Store, error) {
	path := flagConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.NewStore(path), nil
}

// newOrchestrator wires the store, compositor interface and LUT directory.
func newOrchestrator(logger hclog.Logger) (*orchestrator.Orchestrator, *config.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	lutDir, err := orchestrator.DefaultLUTDir()
	if err != nil {
		return nil, nil, err
	}
	comp := compositor.NewGamescope(flagGamescopectl, logger)
	return orchestrator.New(store, comp, lutDir, logger), store, nil
}
