package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/jfrconley/decky-colorblind/internal/colour"
	"github.com/jfrconley/decky-colorblind/internal/config"
	"github.com/jfrconley/decky-colorblind/internal/lut"
)

func resetGenerateFlags() {
	generateStrength = 1.0
	generateSize = 32
	generateOutput = ""
	generateCompress = false
}

func TestRunGenerateWritesCube(t *testing.T) {
	defer resetGenerateFlags()
	resetGenerateFlags()

	generateOutput = filepath.Join(t.TempDir(), "test.cube")
	generateSize = 4
	generateStrength = 0.5

	if err := runGenerate(generateCmd, []string{"deuteranope", "hue_shift"}); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	data, err := os.ReadFile(generateOutput)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[1] != "LUT_3D_SIZE 4" {
		t.Errorf("size line = %q", lines[1])
	}
	if got, want := len(lines), 2+64; got != want {
		t.Errorf("generated %d lines, want %d", got, want)
	}
}

func TestRunGenerateRejectsBadArgs(t *testing.T) {
	defer resetGenerateFlags()
	resetGenerateFlags()

	if err := runGenerate(generateCmd, []string{"achromatope", "hue_shift"}); err == nil {
		t.Error("runGenerate() with unknown type succeeded")
	}
	if err := runGenerate(generateCmd, []string{"protanope", "correct"}); err == nil {
		t.Error("runGenerate() with unknown operation succeeded")
	}

	generateStrength = 1.5
	if err := runGenerate(generateCmd, []string{"protanope", "simulate"}); err == nil {
		t.Error("runGenerate() with out-of-range strength succeeded")
	}
}

func TestWriteCompressedRoundTrip(t *testing.T) {
	l, err := lut.Build(config.CorrectionConfig{
		Enabled:   true,
		CBType:    colour.Protanope,
		Operation: colour.OpSimulate,
		Strength:  1.0,
		LUTSize:   4,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.cube.xz")
	if err := writeCompressed(l, path); err != nil {
		t.Fatalf("writeCompressed() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("xz.NewReader() error = %v", err)
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decompressing: %v", err)
	}

	if !bytes.Equal(plain, l.EncodeCube()) {
		t.Error("decompressed LUT differs from encoded LUT")
	}
}

func TestWithXZExt(t *testing.T) {
	if got := withXZExt("a.cube"); got != "a.cube.xz" {
		t.Errorf("withXZExt(a.cube) = %q", got)
	}
	if got := withXZExt("a.cube.xz"); got != "a.cube.xz" {
		t.Errorf("withXZExt(a.cube.xz) = %q", got)
	}
}
