package colour

// Correct computes a corrected colour for the given deficiency.
//
// OpHueShift rotates the colour's hue away from the hue range the deficiency
// cannot discriminate, by an angle proportional to strength, preserving
// lightness and saturation. Unlike daltonization this never darkens the
// image, since lightness is untouched.
//
// OpDaltonize computes the perceptual error between the original colour and
// its simulated perception, then redistributes that error into the channels
// the viewer can perceive (Fidaner error-to-delta remap).
//
// OpSimulate blends the original towards its simulated perception.
//
// strength is clamped to [0, 1]; strength 0 returns c unchanged.
func Correct(c Vec3, t CBType, op Operation, strength float64) Vec3 {
	strength = clamp01(strength)
	if strength == 0 {
		return c
	}
	switch op {
	case OpDaltonize:
		return daltonize(c, t, strength)
	case OpSimulate:
		return Lerp(c, Simulate(c, t), strength).Clamp()
	default:
		return hueShift(c, t, strength)
	}
}

// Transform applies the operation selected by op to a single colour. This is
// the per-sample function the LUT builder and image preview evaluate.
func Transform(c Vec3, t CBType, op Operation, strength float64) Vec3 {
	if op == OpSimulate {
		return Lerp(c, Simulate(c, t), clamp01(strength)).Clamp()
	}
	return Correct(c, t, op, strength).Clamp()
}

// daltonize applies the Fidaner correction: simulate the deficiency in the
// Viénot LMS basis, take the error against the original and fold it back
// into the visible channels.
func daltonize(c Vec3, t CBType, strength float64) Vec3 {
	sim := rgbFromLMSVienot.MulVec(vienotMatrix(t).MulVec(lmsFromRGBVienot.MulVec(c)))
	err := c.Sub(sim).Scale(strength)
	return c.Add(daltonDeltaMatrix(t).MulVec(err)).Clamp()
}

// Full-strength hue rotations in degrees, applied with a raised-cosine
// falloff around the hue bands each deficiency confuses. Protanopes and
// deuteranopes confuse reds (0°) with greens (120°); the two bands rotate in
// opposite directions so the confused hues separate. Tritanopes confuse
// yellows (60°) with blues (240°).
const (
	redGreenBandWidth   = 60.0
	blueYellowBandWidth = 50.0

	protanRedShift     = -40.0
	protanGreenShift   = 45.0
	deutanRedShift     = -50.0
	deutanGreenShift   = 40.0
	tritanYellowShift  = -45.0
	tritanBlueShift    = 40.0
	tritanBlueBandWide = 60.0
)

// fullShift returns the signed hue rotation in degrees applied at strength 1
// for a colour whose original hue is h.
func fullShift(t CBType, h float64) float64 {
	switch t {
	case Protanope:
		return protanRedShift*hueBand(h, 0, redGreenBandWidth) +
			protanGreenShift*hueBand(h, 120, redGreenBandWidth)
	case Tritanope:
		return tritanYellowShift*hueBand(h, 60, blueYellowBandWidth) +
			tritanBlueShift*hueBand(h, 240, tritanBlueBandWide)
	default:
		return deutanRedShift*hueBand(h, 0, redGreenBandWidth) +
			deutanGreenShift*hueBand(h, 120, redGreenBandWidth)
	}
}

// hueShift rotates the hue of c by strength * fullShift degrees. The shift
// angle is computed once from the original hue, so for a fixed colour the
// rotation (and the distance moved) grows monotonically with strength.
func hueShift(c Vec3, t CBType, strength float64) Vec3 {
	c = c.Clamp()
	h, s, l := RGBToHSL(c)
	if s == 0 {
		// Achromatic colours have no hue to rotate.
		return c
	}
	h = wrapHue(h + strength*fullShift(t, h))
	return HSLToRGB(h, s, l)
}
