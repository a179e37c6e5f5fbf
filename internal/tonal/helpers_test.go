package tonal

// Test helper functions shared across tonal operator tests.

// pixel builds a one-pixel RGB slice.
func pixel(r, g, b uint8) []uint8 {
	return []uint8{r, g, b}
}

// uniform builds a w*h buffer filled with a single color.
func uniform(w, h int, r, g, b uint8) []uint8 {
	px := make([]uint8, w*h*3)
	for i := 0; i < len(px); i += 3 {
		px[i] = r
		px[i+1] = g
		px[i+2] = b
	}
	return px
}

// within reports whether got is within tol integer levels of want.
// One level of slack absorbs float truncation jitter at exact values.
func within(got, want uint8, tol int) bool {
	d := int(got) - int(want)
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// clonePixels returns an independent copy of a pixel slice.
func clonePixels(px []uint8) []uint8 {
	out := make([]uint8, len(px))
	copy(out, px)
	return out
}
