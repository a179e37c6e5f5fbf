package tonal

// Brightness adds a constant delta to every channel. The pipeline runs
// two independent brightness passes; each clamps on its own, so the
// deltas must not be summed before clamping.
func Brightness(px []uint8, delta float64) {
	for i := range px {
		px[i] = clamp8(float64(px[i]) + delta)
	}
}
