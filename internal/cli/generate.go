package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"

	"github.com/jfrconley/decky-colorblind/internal/colour"
	"github.com/jfrconley/decky-colorblind/internal/config"
	"github.com/jfrconley/decky-colorblind/internal/lut"
)

var (
	// Generate command flags
	generateStrength float64
	generateSize     int
	generateOutput   string
	generateCompress bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <cb-type> <operation>",
	Short: "Generate a colorblind LUT as a .cube file",
	Long: `Generate a 3D LUT for colorblind simulation or correction and write it as
a .cube file.

Types:
  protanope    - red deficiency
  deuteranope  - green deficiency
  tritanope    - blue deficiency

Operations:
  simulate   - show how a colorblind viewer sees
  daltonize  - Fidaner error redistribution
  hue_shift  - hue rotation away from confused hues (preserves lightness)

Examples:
  # Protanope correction LUT
  colorblind generate protanope hue_shift -o protanope.cube

  # Deuteranope simulation at 80% strength
  colorblind generate deuteranope simulate --strength 0.8

  # High resolution daltonization, xz-compressed for archiving
  colorblind generate tritanope daltonize --size 64 --compress`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Float64VarP(&generateStrength, "strength", "s", 1.0, "effect strength from 0.0 (none) to 1.0 (full)")
	generateCmd.Flags().IntVar(&generateSize, "size", 32, fmt.Sprintf("LUT resolution per axis (%d-%d)", config.MinLUTSize, config.MaxLUTSize))
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file path (default: derived from parameters)")
	generateCmd.Flags().BoolVar(&generateCompress, "compress", false, "xz-compress the output (.cube.xz)")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	cbType, err := colour.ParseCBType(args[0])
	if err != nil {
		return err
	}
	op, err := colour.ParseOperation(args[1])
	if err != nil {
		return err
	}

	cfg := config.CorrectionConfig{
		Enabled:   true,
		CBType:    cbType,
		Operation: op,
		Strength:  generateStrength,
		LUTSize:   generateSize,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := lut.Build(cfg)
	if err != nil {
		return err
	}

	output := generateOutput
	if output == "" {
		output = fmt.Sprintf("%s_%s_%d.cube", cbType, op, int(generateStrength*100))
	}

	if generateCompress {
		output = withXZExt(output)
		if err := writeCompressed(l, output); err != nil {
			return err
		}
	} else if err := l.WriteCube(output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s (%d samples)\n", output, len(l.Samples))
	return nil
}

// writeCompressed writes the encoded LUT through an xz writer. Compressed
// output is for archiving and sharing; gamescopectl loads plain .cube files.
func writeCompressed(l *lut.GeneratedLUT, path string) error {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := w.Write(l.EncodeCube()); err != nil {
		return fmt.Errorf("failed to compress LUT: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write compressed LUT: %w", err)
	}
	return nil
}

func withXZExt(path string) string {
	if filepath.Ext(path) == ".xz" {
		return path
	}
	return path + ".xz"
}
