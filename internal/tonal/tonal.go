// Package tonal provides the per-pixel and neighborhood tonal
// operators composed by the grading pipeline.
//
// Every operator works in place on interleaved RGB pixel data
// (3 bytes per pixel, row-major) and follows the same contract: for
// each channel, new value = clamp(f(old value, params), 0, 255), with
// all intermediate arithmetic in float64 and the final value truncated
// toward zero before clamping. Operators are total functions with no
// failure path.
//
// Only Sharpen is a neighborhood operator; it reads a snapshot taken
// before its pass so earlier writes never feed later reads. All other
// operators visit each pixel independently.
package tonal

// Luminance weights (Rec. 601).
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// clamp8 truncates a value toward zero and clamps it to [0, 255].
// Truncation (not rounding) matches the reference semantics.
func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// luminance returns the Rec. 601 luminance of a pixel.
func luminance(r, g, b float64) float64 {
	return lumR*r + lumG*g + lumB*b
}
