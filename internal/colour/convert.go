package colour

// gamma is the exponent used to linearize sRGB channel values before LMS
// conversion. The simulation matrices assume linear light, so every
// conversion into LMS applies this and every conversion out inverts it.
const gamma = 2.2

// ToLinear converts a gamma-encoded sRGB colour to linear light.
// Input is clamped to [0, 1] first; negative values would otherwise produce
// NaN from the power function.
func ToLinear(rgb Vec3) Vec3 {
	return rgb.Clamp().Pow(gamma)
}

// FromLinear converts a linear-light colour back to gamma-encoded sRGB.
func FromLinear(rgb Vec3) Vec3 {
	return rgb.Clamp().Pow(1.0 / gamma)
}

// ToLMS converts a gamma-encoded sRGB colour to LMS cone response space.
func ToLMS(rgb Vec3) Vec3 {
	return lmsFromRGB.MulVec(ToLinear(rgb))
}

// FromLMS converts an LMS colour back to gamma-encoded sRGB.
// The result is clamped to the displayable range before gamma encoding.
func FromLMS(lms Vec3) Vec3 {
	return FromLinear(rgbFromLMS.MulVec(lms))
}
