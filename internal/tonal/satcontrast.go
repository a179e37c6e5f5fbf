package tonal

// SaturationContrast applies saturation and primary contrast in a
// single combined pass. Saturation scales each channel's distance
// from the pixel's luminance by (1+sat); contrast then scales the
// distance from mid-gray by (1+contrast). The two sub-adjustments do
// not commute exactly, so the order here is fixed.
func SaturationContrast(px []uint8, sat, contrast float64) {
	satF := 1 + sat
	conF := 1 + contrast

	for i := 0; i+2 < len(px); i += 3 {
		r := float64(px[i])
		g := float64(px[i+1])
		b := float64(px[i+2])

		lum := luminance(r, g, b)

		r = lum + (r-lum)*satF
		g = lum + (g-lum)*satF
		b = lum + (b-lum)*satF

		px[i] = clamp8(128 + (r-128)*conF)
		px[i+1] = clamp8(128 + (g-128)*conF)
		px[i+2] = clamp8(128 + (b-128)*conF)
	}
}
