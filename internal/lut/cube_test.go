package lut

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jfrconley/decky-colorblind/internal/colour"
)

func TestEncodeCubeLayout(t *testing.T) {
	l := &GeneratedLUT{
		Size:  2,
		Title: "deuteranope hue_shift (strength=0.50)",
		Samples: []colour.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 1},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 1},
			{X: 1, Y: 1, Z: 0},
			{X: 1, Y: 1, Z: 1},
		},
	}

	data := l.EncodeCube()
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	if want := 2 + 8; len(lines) != want {
		t.Fatalf("EncodeCube() produced %d lines, want %d", len(lines), want)
	}
	if lines[0] != `TITLE "deuteranope hue_shift (strength=0.50)"` {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[1] != "LUT_3D_SIZE 2" {
		t.Errorf("size line = %q", lines[1])
	}
	if lines[2] != "0.000000 0.000000 0.000000" {
		t.Errorf("first sample line = %q", lines[2])
	}
	if lines[len(lines)-1] != "1.000000 1.000000 1.000000" {
		t.Errorf("last sample line = %q", lines[len(lines)-1])
	}
}

func TestEncodeCubeSampleCount(t *testing.T) {
	l, err := Build(buildConfig(8))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(l.EncodeCube()))
	samples := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "TITLE") || strings.HasPrefix(line, "LUT_3D_SIZE") {
			continue
		}
		var r, g, b float64
		if _, err := fmt.Sscanf(line, "%f %f %f", &r, &g, &b); err != nil {
			t.Fatalf("unparseable sample line %q: %v", line, err)
		}
		if r < 0 || r > 1 || g < 0 || g > 1 || b < 0 || b > 1 {
			t.Fatalf("out of range sample line %q", line)
		}
		samples++
	}

	if want := 8 * 8 * 8; samples != want {
		t.Errorf("encoded %d samples, want %d", samples, want)
	}
}

func TestWriteCube(t *testing.T) {
	l, err := Build(buildConfig(4))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "luts", "out.cube")
	if err := l.WriteCube(path); err != nil {
		t.Fatalf("WriteCube() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written LUT: %v", err)
	}
	if !bytes.Equal(data, l.EncodeCube()) {
		t.Error("written file differs from encoded LUT")
	}
}
