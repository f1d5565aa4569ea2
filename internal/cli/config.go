package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jfrconley/decky-colorblind/internal/colour"
	"github.com/jfrconley/decky-colorblind/internal/config"
)

var (
	// Config command flags
	configApp       string
	configEnabled   bool
	configCBType    string
	configOperation string
	configStrength  float64
	configSize      int
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write correction configurations",
	Long: `Read and write the stored correction configuration per scope.

Configurations are keyed by scope: the global default, or an application
identifier given with --app. Writes are validated and rejected on violation;
nothing is silently clamped. Writing never applies - use 'colorblind apply'
to commit a configuration to the compositor.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the configuration for a scope as JSON",
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the configuration for a scope",
	Long: `Update fields of the stored configuration for a scope. Only flags given on
the command line are changed; the rest keep their stored values.

Examples:
  colorblind config set --enabled --cb-type deuteranope --operation hue_shift
  colorblind config set --app 1086940 --strength 0.6
  colorblind config set --enabled=false`,
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored scope configuration",
	RunE:  runConfigList,
}

func init() {
	configCmd.PersistentFlags().StringVar(&configApp, "app", "", "application identifier (default: global scope)")

	configSetCmd.Flags().BoolVar(&configEnabled, "enabled", false, "whether a LUT should be applied")
	configSetCmd.Flags().StringVar(&configCBType, "cb-type", "", "colorblindness type (protanope, deuteranope, tritanope)")
	configSetCmd.Flags().StringVar(&configOperation, "operation", "", "operation (simulate, daltonize, hue_shift)")
	configSetCmd.Flags().Float64Var(&configStrength, "strength", 1.0, "effect strength from 0.0 to 1.0")
	configSetCmd.Flags().IntVar(&configSize, "size", 32, "LUT resolution per axis")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

// runConfigGet executes the config get command.
func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cfg, err := store.Read(configApp)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// runConfigSet executes the config set command.
func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	// Start from the stored (or default) configuration and overlay only
	// the flags that were given.
	cfg, err := store.Read(configApp)
	if err != nil {
		return err
	}

	overlayConfigFlags(cmd.Flags(), &cfg)

	if err := store.Update(configApp, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated configuration for scope %s\n", config.NormalizeScope(configApp))
	return nil
}

// overlayConfigFlags copies only the flags the user actually set onto the
// stored configuration.
func overlayConfigFlags(flags *pflag.FlagSet, cfg *config.CorrectionConfig) {
	if flags.Changed("enabled") {
		cfg.Enabled = configEnabled
	}
	if flags.Changed("cb-type") {
		cfg.CBType = colour.CBType(configCBType)
	}
	if flags.Changed("operation") {
		cfg.Operation = colour.Operation(configOperation)
	}
	if flags.Changed("strength") {
		cfg.Strength = configStrength
	}
	if flags.Changed("size") {
		cfg.LUTSize = configSize
	}
}

// runConfigList executes the config list command.
func runConfigList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	scopes, err := store.All()
	if err != nil {
		return err
	}
	if len(scopes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No configurations stored.")
		return nil
	}

	names := make([]string, 0, len(scopes))
	for name := range scopes {
		names = append(names, name)
	}
	sort.Strings(names)

	table := NewTable([]string{"SCOPE", "ENABLED", "TYPE", "OPERATION", "STRENGTH", "SIZE"})
	// Keep the scope column from pushing the table past the terminal; the
	// remaining columns hold short fixed vocabulary.
	if width := terminalWidth(); width > 60 {
		table.SetColumnMaxWidth(0, width-55)
	}

	for _, name := range names {
		cfg := scopes[name]
		table.AddRow([]string{
			name,
			strconv.FormatBool(cfg.Enabled),
			string(cfg.CBType),
			string(cfg.Operation),
			fmt.Sprintf("%.2f", cfg.Strength),
			strconv.Itoa(cfg.LUTSize),
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}
