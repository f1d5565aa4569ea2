package cli

import (
	"fmt"
	goimage "image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfrconley/decky-colorblind/internal/colour"
	"github.com/jfrconley/decky-colorblind/internal/image"
)

var (
	// Preview command flags
	previewCBType    string
	previewOperation string
	previewStrength  float64
	previewOutput    string
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <image>",
	Short: "Apply a transform to an image for visual inspection",
	Long: `Apply a colorblind transform to an image and write the result as PNG.

This runs the same per-colour transform the LUT samples, so the output shows
exactly what a generated LUT would do to that image. Useful to judge a
type/operation/strength combination before applying it system-wide.

Supported input formats: JPEG, PNG, GIF, WebP.

Examples:
  # How a deuteranope sees this screenshot
  colorblind preview screenshot.png --cb-type deuteranope --operation simulate

  # Full-strength hue shift correction
  colorblind preview screenshot.png --cb-type protanope --operation hue_shift -o corrected.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewCBType, "cb-type", "deuteranope", "colorblindness type (protanope, deuteranope, tritanope)")
	previewCmd.Flags().StringVar(&previewOperation, "operation", "simulate", "operation (simulate, daltonize, hue_shift)")
	previewCmd.Flags().Float64VarP(&previewStrength, "strength", "s", 1.0, "effect strength from 0.0 to 1.0")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "output PNG path (default: <input>_preview.png)")
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, args []string) error {
	cbType, err := colour.ParseCBType(previewCBType)
	if err != nil {
		return err
	}
	op, err := colour.ParseOperation(previewOperation)
	if err != nil {
		return err
	}
	if previewStrength < 0 || previewStrength > 1 {
		return fmt.Errorf("strength %g out of range [0, 1]", previewStrength)
	}

	src, err := image.NewFileLoader().Load(args[0])
	if err != nil {
		return err
	}

	out := transformImage(src, cbType, op, previewStrength)

	output := previewOutput
	if output == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		output = base + "_preview.png"
	}
	if err := image.WritePNG(out, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Preview written: %s\n", output)
	return nil
}

// transformImage applies the per-colour transform to every pixel.
func transformImage(src goimage.Image, t colour.CBType, op colour.Operation, strength float64) goimage.Image {
	bounds := src.Bounds()
	dst := goimage.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			in := colour.Vec3{
				X: float64(r) / 65535.0,
				Y: float64(g) / 65535.0,
				Z: float64(b) / 65535.0,
			}
			out := colour.Transform(in, t, op, strength)
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(out.X*255 + 0.5),
				G: uint8(out.Y*255 + 0.5),
				B: uint8(out.Z*255 + 0.5),
				A: uint8(a >> 8),
			})
		}
	}
	return dst
}
