package tonal

// Levels remaps the input black and white points to the full output
// range: (v - black) * 255 / (white - black), elementwise on R, G and
// B. A degenerate range (white <= black) makes the pass a no-op
// instead of dividing by zero or inverting the image.
func Levels(px []uint8, black, white float64) {
	if white <= black {
		return
	}

	// Divide last: (v-black)*255 is exact for integer inputs, so values
	// at the white point land on exactly 255 instead of one ulp short.
	span := white - black
	for i := range px {
		px[i] = clamp8((float64(px[i]) - black) * 255 / span)
	}
}
