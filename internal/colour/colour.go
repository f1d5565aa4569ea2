// Package colour implements the colour science behind colorblindness
// simulation and correction: RGB/LMS colour space conversion, confusion-plane
// simulation and the correction algorithms that the LUT builder samples.
package colour

import (
	"fmt"
	"math"
)

// Vec3 represents a colour as three float64 channels in [0, 1].
// Depending on context the channels are either RGB or LMS cone responses.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Pow returns the component-wise power of the vector.
func (v Vec3) Pow(e float64) Vec3 {
	return Vec3{math.Pow(v.X, e), math.Pow(v.Y, e), math.Pow(v.Z, e)}
}

// Clamp returns the vector with each component clamped to [0, 1].
func (v Vec3) Clamp() Vec3 {
	return Vec3{clamp01(v.X), clamp01(v.Y), clamp01(v.Z)}
}

// Dist returns the Euclidean distance between two vectors.
func (v Vec3) Dist(o Vec3) float64 {
	d := v.Sub(o)
	return math.Sqrt(d.Dot(d))
}

// Lerp linearly interpolates between a and b by t.
// t=0 returns a, t=1 returns b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// Mat3 is a row-major 3x3 matrix used for colour space transformations.
type Mat3 struct {
	Rows [3]Vec3
}

// MulVec multiplies the matrix by a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m.Rows[0].Dot(v),
		m.Rows[1].Dot(v),
		m.Rows[2].Dot(v),
	}
}

// Inverse returns the matrix inverse via the adjugate. The matrix must be
// non-singular.
func (m Mat3) Inverse() Mat3 {
	a, b, c := m.Rows[0].X, m.Rows[0].Y, m.Rows[0].Z
	d, e, f := m.Rows[1].X, m.Rows[1].Y, m.Rows[1].Z
	g, h, i := m.Rows[2].X, m.Rows[2].Y, m.Rows[2].Z

	ca := e*i - f*h
	cb := -(d*i - f*g)
	cc := d*h - e*g

	det := a*ca + b*cb + c*cc

	return Mat3{Rows: [3]Vec3{
		{ca / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{cb / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{cc / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}}
}

// CBType identifies which cone class is modelled as deficient.
type CBType string

const (
	// Protanope models missing L (long wavelength, red) cones.
	Protanope CBType = "protanope"
	// Deuteranope models missing M (medium wavelength, green) cones.
	Deuteranope CBType = "deuteranope"
	// Tritanope models missing S (short wavelength, blue) cones.
	Tritanope CBType = "tritanope"
)

// ParseCBType parses a colorblindness type from its string form.
func ParseCBType(s string) (CBType, error) {
	switch CBType(s) {
	case Protanope, Deuteranope, Tritanope:
		return CBType(s), nil
	}
	return "", fmt.Errorf("unknown colorblindness type %q (expected protanope, deuteranope or tritanope)", s)
}

// Operation identifies which transform family a LUT applies.
type Operation string

const (
	// OpSimulate shows how a colorblind viewer perceives colours.
	OpSimulate Operation = "simulate"
	// OpDaltonize redistributes lost colour information into visible channels.
	OpDaltonize Operation = "daltonize"
	// OpHueShift rotates hues away from the deficiency's confusion range.
	OpHueShift Operation = "hue_shift"
)

// ParseOperation parses an operation from its string form.
func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OpSimulate, OpDaltonize, OpHueShift:
		return Operation(s), nil
	}
	return "", fmt.Errorf("unknown operation %q (expected simulate, daltonize or hue_shift)", s)
}
