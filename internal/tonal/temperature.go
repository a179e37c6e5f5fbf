package tonal

// Temperature scales the red channel by 1-t/100 and the blue channel
// by 1+t/100, leaving green unchanged. The sign convention follows the
// reference grade exactly: a negative t raises red and lowers blue.
func Temperature(px []uint8, t float64) {
	rF := 1 - t/100
	bF := 1 + t/100

	for i := 0; i+2 < len(px); i += 3 {
		px[i] = clamp8(float64(px[i]) * rF)
		px[i+2] = clamp8(float64(px[i+2]) * bF)
	}
}
