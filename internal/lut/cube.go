package lut

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EncodeCube serializes the LUT in the Adobe/Resolve .cube text format:
// a TITLE line, a LUT_3D_SIZE line, then Size³ lines of three float values
// with six decimal places. This is the layout gamescopectl's set_look
// command loads.
func (l *GeneratedLUT) EncodeCube() []byte {
	var buf bytes.Buffer
	// Preallocate: each sample line is 27 bytes ("0.000000 0.000000 0.000000\n").
	buf.Grow(len(l.Samples)*27 + 64)

	fmt.Fprintf(&buf, "TITLE %q\n", l.Title)
	fmt.Fprintf(&buf, "LUT_3D_SIZE %d\n", l.Size)
	for _, s := range l.Samples {
		fmt.Fprintf(&buf, "%.6f %.6f %.6f\n", s.X, s.Y, s.Z)
	}
	return buf.Bytes()
}

// WriteCube writes the encoded LUT to path, creating parent directories as
// needed. The file is world-readable so the compositor process can load it.
func (l *GeneratedLUT) WriteCube(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create LUT dir: %w", err)
		}
	}
	if err := os.WriteFile(path, l.EncodeCube(), 0o644); err != nil {
		return fmt.Errorf("failed to write LUT file: %w", err)
	}
	return nil
}
