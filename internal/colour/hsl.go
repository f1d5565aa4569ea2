package colour

import "math"

// RGBToHSL converts an RGB colour to HSL.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func RGBToHSL(c Vec3) (h, s, l float64) {
	r, g, b := c.X, c.Y, c.Z

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Saturation.
	if delta == 0 {
		s = 0
		h = 0
		return
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return
}

// HSLToRGB converts HSL back to an RGB colour.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func HSLToRGB(h, s, l float64) Vec3 {
	if s == 0 {
		// Achromatic (grey).
		return Vec3{l, l, l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Vec3{
		hueToRGB(p, q, h+120),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-120),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = wrapHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// wrapHue normalizes a hue angle to the [0, 360) range.
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hueBand returns a raised-cosine weight for how close hue h is to the band
// centred at center: 1 at the centre, falling to 0 at width degrees away.
// Distances wrap around the colour wheel (shortest path).
func hueBand(h, center, width float64) float64 {
	d := math.Abs(h - center)
	d = math.Mod(d, 360)
	if d > 180 {
		d = 360 - d
	}
	if d >= width {
		return 0
	}
	return 0.5 * (1 + math.Cos(math.Pi*d/width))
}
