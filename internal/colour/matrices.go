package colour

// Colour space and simulation matrices.
//
// The LMS conversion pair models human cone response:
// https://en.wikipedia.org/wiki/LMS_color_space
// Values from https://ixora.io/projects/colorblindness/color-blindness-simulation-research/

var lmsFromRGB = Mat3{Rows: [3]Vec3{
	{0.31399022, 0.63951294, 0.04649755},
	{0.15537241, 0.75789446, 0.08670142},
	{0.01775239, 0.10944209, 0.87256922},
}}

// The published inverse is only accurate to 8 digits; the gamma decompression
// amplifies that residual near zero into visible sRGB error, so the exact
// float64 inverse is derived instead.
var rgbFromLMS = lmsFromRGB.Inverse()

// Per-type simulation matrices. Each projects an LMS colour onto the
// confusion plane of the deficiency by reconstructing the lost cone response
// from the two remaining ones.

var lmsProtanope = Mat3{Rows: [3]Vec3{
	{0.0, 1.05118294, -0.05116099}, // L reconstructed from M and S
	{0.0, 1.0, 0.0},
	{0.0, 0.0, 1.0},
}}

var lmsDeuteranope = Mat3{Rows: [3]Vec3{
	{1.0, 0.0, 0.0},
	{0.9513092, 0.0, 0.04866992}, // M reconstructed from L and S
	{0.0, 0.0, 1.0},
}}

var lmsTritanope = Mat3{Rows: [3]Vec3{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
	{-0.86744736, 1.86727089, 0.0}, // S reconstructed from L and M
}}

// Daltonization matrices (Fidaner et al.), which operate on a different LMS
// basis due to Viénot:
// http://scien.stanford.edu/class/psych221/projects/05/ofidaner/project_report.pdf

var lmsFromRGBVienot = Mat3{Rows: [3]Vec3{
	{17.8824, 43.5161, 4.11935},
	{3.45565, 27.1554, 3.86714},
	{0.0299566, 0.184309, 1.46709},
}}

var rgbFromLMSVienot = Mat3{Rows: [3]Vec3{
	{0.080944447900, -0.13050440900, 0.116721066},
	{-0.010248533500, 0.05401932660, -0.113614708},
	{-0.000365296938, -0.00412161469, 0.693511405},
}}

var vienotProtanope = Mat3{Rows: [3]Vec3{
	{0.0, 2.02344, -2.52581},
	{0.0, 1.0, 0.0},
	{0.0, 0.0, 1.0},
}}

var vienotDeuteranope = Mat3{Rows: [3]Vec3{
	{1.0, 0.0, 0.0},
	{0.494207, 0.0, 1.24827},
	{0.0, 0.0, 1.0},
}}

var vienotTritanope = Mat3{Rows: [3]Vec3{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
	{-0.395913, 0.801109, 0.0},
}}

// Error-to-delta matrices redistribute the invisible colour error into the
// channels the viewer can still perceive.

var daltonDeltaProtanope = Mat3{Rows: [3]Vec3{
	{0.0, 0.0, 0.0},
	{0.7, 1.0, 0.0},
	{0.7, 0.0, 1.0},
}}

var daltonDeltaDeuteranope = Mat3{Rows: [3]Vec3{
	{1.0, 0.7, 0.0},
	{0.0, 0.0, 0.0},
	{0.0, 0.7, 1.0},
}}

var daltonDeltaTritanope = Mat3{Rows: [3]Vec3{
	{1.0, 0.0, 0.7},
	{0.0, 1.0, 0.7},
	{0.0, 0.0, 0.0},
}}

// simulationMatrix returns the LMS confusion-plane projection for a type.
func simulationMatrix(t CBType) Mat3 {
	switch t {
	case Protanope:
		return lmsProtanope
	case Tritanope:
		return lmsTritanope
	default:
		return lmsDeuteranope
	}
}

// vienotMatrix returns the Viénot-basis simulation matrix for a type.
func vienotMatrix(t CBType) Mat3 {
	switch t {
	case Protanope:
		return vienotProtanope
	case Tritanope:
		return vienotTritanope
	default:
		return vienotDeuteranope
	}
}

// daltonDeltaMatrix returns the Fidaner error redistribution matrix for a type.
func daltonDeltaMatrix(t CBType) Mat3 {
	switch t {
	case Protanope:
		return daltonDeltaProtanope
	case Tritanope:
		return daltonDeltaTritanope
	default:
		return daltonDeltaDeuteranope
	}
}
