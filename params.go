package cine

// Params holds the numeric constants of the grading pipeline. The
// fields are fixed at build time for the Cine-V3 preset; they are not
// runtime-tunable in the current design.
//
// Saturation, ContrastPrimary and ContrastSecondary are fractional
// gains (0.12 means +12%). Brightness deltas and black/white points
// are in channel levels. Temperature follows the reference sign
// convention: negative values raise the red channel and lower blue.
type Params struct {
	// Saturation scales each channel's distance from the pixel
	// luminance. Applied in the first combined pass.
	Saturation float64

	// ContrastPrimary scales each channel's distance from mid-gray.
	// Applied in the first combined pass, after saturation.
	ContrastPrimary float64

	// Brightness1 is the additive delta of the first brightness pass.
	Brightness1 float64

	// SharpenAmount is the unsharp-mask strength in percent.
	SharpenAmount float64

	// ContrastSecondary is the fractional gain of the standalone
	// contrast pass. Kept separate from ContrastPrimary: the two
	// stages are not mathematically equivalent and both are needed
	// for output parity with the reference grade.
	ContrastSecondary float64

	// Brightness2 is the additive delta of the second brightness
	// pass, clamped independently of the first.
	Brightness2 float64

	// Highlights shifts pixels above the luminance threshold.
	Highlights float64

	// Shadows shifts pixels below the luminance threshold.
	Shadows float64

	// BlackPoint and WhitePoint are remapped to 0 and 255 by the
	// levels pass. The pass is a no-op when WhitePoint <= BlackPoint.
	BlackPoint float64
	WhitePoint float64

	// Temperature scales red by 1-t/100 and blue by 1+t/100.
	Temperature float64

	// HueShift rotates the hue of every pixel, in degrees.
	HueShift float64
}

// CineV3 returns the parameters of the built-in Cine-V3 preset.
func CineV3() Params {
	return Params{
		Saturation:        0.12,
		ContrastPrimary:   0.03,
		Brightness1:       2,
		SharpenAmount:     36,
		ContrastSecondary: 0.60,
		Brightness2:       3,
		Highlights:        -2.0,
		Shadows:           6.0,
		BlackPoint:        7,
		WhitePoint:        252,
		Temperature:       -6,
		HueShift:          -4.0,
	}
}
