package tonal

// Contrast scales each channel's distance from mid-gray:
// (v - 128) * factor + 128. This is the standalone secondary contrast
// stage, distinct from the combined saturation/contrast pass.
func Contrast(px []uint8, factor float64) {
	for i := range px {
		px[i] = clamp8((float64(px[i])-128)*factor + 128)
	}
}
