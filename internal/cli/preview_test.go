package cli

import (
	goimage "image"
	"image/color"
	"testing"

	"github.com/jfrconley/decky-colorblind/internal/colour"
)

func TestTransformImage(t *testing.T) {
	src := goimage.NewRGBA(goimage.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 128, G: 128, B: 128, A: 200})

	out := transformImage(src, colour.Deuteranope, colour.OpSimulate, 1.0)

	// Pure red collapses towards yellow-brown under deuteranope simulation.
	got := out.At(0, 0).(color.RGBA)
	if got.R == 255 && got.G == 0 && got.B == 0 {
		t.Error("simulated red pixel unchanged")
	}

	// Greys survive simulation, and alpha is preserved.
	grey := out.At(1, 0).(color.RGBA)
	if grey.A != 200 {
		t.Errorf("alpha = %d, want 200", grey.A)
	}
	if int(grey.R)-128 > 2 || 128-int(grey.R) > 2 {
		t.Errorf("grey pixel moved: %v", grey)
	}
}

func TestTransformImageZeroStrengthIsIdentity(t *testing.T) {
	src := goimage.NewRGBA(goimage.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 10, G: 200, B: 77, A: 255})

	out := transformImage(src, colour.Tritanope, colour.OpHueShift, 0)

	if got := out.At(0, 0).(color.RGBA); got != (color.RGBA{R: 10, G: 200, B: 77, A: 255}) {
		t.Errorf("zero strength changed pixel: %v", got)
	}
}
