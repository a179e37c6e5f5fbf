package tonal

// Highlight/shadow luminance threshold and the half-width of the
// blend band around it. Pixels at or above threshold+band get the
// full highlights delta, pixels at or below threshold-band the full
// shadows delta, and the band in between is blended with a smoothstep
// curve to avoid banding at the boundary.
const (
	hsThreshold = 128.0
	hsBand      = 32.0
)

// HighlightsShadows shifts bright pixels by the highlights delta and
// dark pixels by the shadows delta, blending near the luminance
// threshold. The delta is applied uniformly to all three channels of
// a pixel so its hue is preserved.
func HighlightsShadows(px []uint8, highlights, shadows float64) {
	for i := 0; i+2 < len(px); i += 3 {
		r := float64(px[i])
		g := float64(px[i+1])
		b := float64(px[i+2])

		s := smoothstep(hsThreshold-hsBand, hsThreshold+hsBand, luminance(r, g, b))
		delta := shadows*(1-s) + highlights*s

		px[i] = clamp8(r + delta)
		px[i+1] = clamp8(g + delta)
		px[i+2] = clamp8(b + delta)
	}
}

// smoothstep returns the Hermite interpolation 3t^2-2t^3 of v over
// [edge0, edge1], clamped to [0, 1].
func smoothstep(edge0, edge1, v float64) float64 {
	t := (v - edge0) / (edge1 - edge0)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
