package colour

import (
	"math"
	"testing"
)

func TestSimulateDeterminism(t *testing.T) {
	// Two calls with identical inputs must yield bit-identical output.
	colours := []Vec3{
		{1, 0, 0},
		{0.2, 0.6, 0.3},
		{0.123456, 0.654321, 0.999999},
	}

	for _, tp := range []CBType{Protanope, Deuteranope, Tritanope} {
		for _, c := range colours {
			first := Simulate(c, tp)
			second := Simulate(c, tp)
			if first != second {
				t.Errorf("Simulate(%v, %s) not deterministic: %v != %v", c, tp, first, second)
			}
		}
	}
}

func TestSimulateKnownValues(t *testing.T) {
	const tolerance = 1e-6

	tests := []struct {
		name string
		in   Vec3
		tp   CBType
		want Vec3
	}{
		{
			name: "deuteranope pure red",
			in:   Vec3{1, 0, 0},
			tp:   Deuteranope,
			want: Vec3{0.604696095704878, 0.6046960960067315, 0.0},
		},
		{
			name: "protanope green mix",
			in:   Vec3{0.2, 0.6, 0.3},
			tp:   Protanope,
			want: Vec3{0.5556787943007566, 0.5556787915388248, 0.3025646640888971},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simulate(tt.in, tt.tp)
			if math.Abs(got.X-tt.want.X) > tolerance ||
				math.Abs(got.Y-tt.want.Y) > tolerance ||
				math.Abs(got.Z-tt.want.Z) > tolerance {
				t.Errorf("Simulate(%v, %s) = %v, want %v", tt.in, tt.tp, got, tt.want)
			}
		})
	}
}

func TestSimulateTotalOverInputDomain(t *testing.T) {
	// Simulate must be defined (and in range) for any input, including
	// out-of-range colours, which are clamped.
	inputs := []Vec3{
		{0, 0, 0},
		{1, 1, 1},
		{-1, 0.5, 2},
		{100, -100, 0},
	}

	for _, tp := range []CBType{Protanope, Deuteranope, Tritanope} {
		for _, in := range inputs {
			out := Simulate(in, tp)
			for _, ch := range []float64{out.X, out.Y, out.Z} {
				if ch < 0 || ch > 1 || math.IsNaN(ch) {
					t.Errorf("Simulate(%v, %s) = %v, out of range", in, tp, out)
				}
			}
		}
	}
}

func TestSimulatePreservesGreys(t *testing.T) {
	// Greys carry no chromatic information, so simulation should leave them
	// close to unchanged for every deficiency type.
	const tolerance = 1e-3

	for _, tp := range []CBType{Protanope, Deuteranope, Tritanope} {
		for v := 0.0; v <= 1.0; v += 0.25 {
			in := Vec3{v, v, v}
			out := Simulate(in, tp)
			if out.Dist(in) > tolerance {
				t.Errorf("Simulate(%v, %s) = %v, want near-identity for grey", in, tp, out)
			}
		}
	}
}
