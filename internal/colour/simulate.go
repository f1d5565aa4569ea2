package colour

// Simulate returns the colour a viewer with the given deficiency perceives.
// The colour is converted to LMS space, projected onto the deficiency's
// confusion plane and converted back to sRGB. Total and deterministic over
// [0,1]³; out-of-range inputs are clamped.
func Simulate(c Vec3, t CBType) Vec3 {
	return FromLMS(simulationMatrix(t).MulVec(ToLMS(c)))
}
