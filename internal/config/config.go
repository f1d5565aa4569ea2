// Package config defines the persisted correction configuration and the
// scope-keyed store that holds it.
package config

import (
	"fmt"

	"github.com/jfrconley/decky-colorblind/internal/colour"
)

// GlobalScope is the sentinel scope key for the global configuration.
const GlobalScope = "GLOBAL"

// LUT resolution bounds. The upper bound caps memory and generation time;
// a 64³ grid is 262144 samples.
const (
	MinLUTSize = 2
	MaxLUTSize = 64
)

// CorrectionConfig is the persisted correction configuration for one scope.
type CorrectionConfig struct {
	// Enabled controls whether any LUT should be applied at all.
	Enabled bool `json:"enabled"`

	// CBType selects which cone class is modelled as deficient.
	CBType colour.CBType `json:"cb_type"`

	// Operation selects the transform family the LUT applies.
	Operation colour.Operation `json:"operation"`

	// Strength blends between the untouched colour (0) and the fully
	// transformed colour (1).
	Strength float64 `json:"strength"`

	// LUTSize is the sampled grid edge length; total samples are LUTSize³.
	LUTSize int `json:"lut_size"`
}

// Default returns the configuration used for a scope that has never been
// written. Enabled defaults to false: the backend applies nothing until the
// frontend explicitly writes a configuration (the frontend's enabled-by-default
// toggle is a UI choice, not a backend one).
func Default() CorrectionConfig {
	return CorrectionConfig{
		Enabled:   false,
		CBType:    colour.Deuteranope,
		Operation: colour.OpHueShift,
		Strength:  1.0,
		LUTSize:   32,
	}
}

// ValidationError reports a configuration field that violates its constraint.
// Values are rejected at the boundary, never silently clamped, so the caller
// can surface the exact violation.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

// Validate checks every field against its documented constraint.
func (c CorrectionConfig) Validate() error {
	if _, err := colour.ParseCBType(string(c.CBType)); err != nil {
		return &ValidationError{
			Field:      "cb_type",
			Value:      string(c.CBType),
			Constraint: "must be protanope, deuteranope or tritanope",
		}
	}
	if _, err := colour.ParseOperation(string(c.Operation)); err != nil {
		return &ValidationError{
			Field:      "operation",
			Value:      string(c.Operation),
			Constraint: "must be simulate, daltonize or hue_shift",
		}
	}
	if c.Strength < 0 || c.Strength > 1 {
		return &ValidationError{
			Field:      "strength",
			Value:      fmt.Sprintf("%g", c.Strength),
			Constraint: "must be between 0.0 and 1.0",
		}
	}
	if c.LUTSize < MinLUTSize || c.LUTSize > MaxLUTSize {
		return &ValidationError{
			Field:      "lut_size",
			Value:      fmt.Sprintf("%d", c.LUTSize),
			Constraint: fmt.Sprintf("must be between %d and %d", MinLUTSize, MaxLUTSize),
		}
	}
	return nil
}

// NormalizeScope maps an empty scope to the global sentinel.
func NormalizeScope(scope string) string {
	if scope == "" {
		return GlobalScope
	}
	return scope
}
