// Package lut samples the colour transforms over a uniform RGB grid and
// serializes the result into the .cube container gamescope's LUT loader
// consumes.
package lut

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"sync"

	"github.com/jfrconley/decky-colorblind/internal/colour"
	"github.com/jfrconley/decky-colorblind/internal/config"
)

// InvalidConfigError reports a configuration the builder cannot sample.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid LUT configuration: " + e.Reason
}

// GeneratedLUT is the dense sampled cube produced by one Build call. It is
// ephemeral: written out, handed to the compositor and discarded.
type GeneratedLUT struct {
	// Size is the grid edge length; Samples holds Size³ entries.
	Size    int
	Samples []colour.Vec3

	// Fingerprint identifies the exact configuration the LUT was built
	// from, for staleness detection.
	Fingerprint string

	// Title is embedded in the .cube header.
	Title string
}

// Build samples the transform selected by cfg over a Size³ grid.
//
// Grid colour at index (i, j, k) is (i, j, k) / (size-1), so index (0,0,0)
// samples black and (n-1,n-1,n-1) samples white. Samples are packed with R
// outermost and B innermost (B varies fastest), matching the order the
// compositor's .cube loader expects; changing either is a silent visual
// corruption, not a runtime error.
//
// Samples are computed in parallel across outer-R slices. The transform
// functions are pure, so workers share nothing but disjoint ranges of the
// output slice.
func Build(cfg config.CorrectionConfig) (*GeneratedLUT, error) {
	if cfg.LUTSize < config.MinLUTSize || cfg.LUTSize > config.MaxLUTSize {
		return nil, &InvalidConfigError{
			Reason: fmt.Sprintf("lut_size %d outside supported range [%d, %d]",
				cfg.LUTSize, config.MinLUTSize, config.MaxLUTSize),
		}
	}
	if _, err := colour.ParseCBType(string(cfg.CBType)); err != nil {
		return nil, &InvalidConfigError{Reason: err.Error()}
	}
	if _, err := colour.ParseOperation(string(cfg.Operation)); err != nil {
		return nil, &InvalidConfigError{Reason: err.Error()}
	}

	n := cfg.LUTSize
	samples := make([]colour.Vec3, n*n*n)
	step := 1.0 / float64(n-1)

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	slices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range slices {
				fillSlice(samples, n, r, step, cfg)
			}
		}()
	}
	for r := 0; r < n; r++ {
		slices <- r
	}
	close(slices)
	wg.Wait()

	return &GeneratedLUT{
		Size:        n,
		Samples:     samples,
		Fingerprint: Fingerprint(cfg),
		Title:       title(cfg),
	}, nil
}

// fillSlice computes every sample with outer grid index r.
func fillSlice(samples []colour.Vec3, n, r int, step float64, cfg config.CorrectionConfig) {
	base := r * n * n
	rv := float64(r) * step
	for g := 0; g < n; g++ {
		row := base + g*n
		gv := float64(g) * step
		for b := 0; b < n; b++ {
			grid := colour.Vec3{X: rv, Y: gv, Z: float64(b) * step}
			samples[row+b] = colour.Transform(grid, cfg.CBType, cfg.Operation, cfg.Strength)
		}
	}
}

// Fingerprint hashes every configuration field that affects the generated
// samples.
func Fingerprint(cfg config.CorrectionConfig) string {
	h := sha256.New()
	fmt.Fprintf(h, "enabled=%t;cb_type=%s;operation=%s;strength=%.6f;lut_size=%d",
		cfg.Enabled, cfg.CBType, cfg.Operation, cfg.Strength, cfg.LUTSize)
	return hex.EncodeToString(h.Sum(nil))
}

func title(cfg config.CorrectionConfig) string {
	return fmt.Sprintf("%s %s (strength=%.2f)", cfg.CBType, cfg.Operation, cfg.Strength)
}
