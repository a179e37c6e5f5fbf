package tonal

// Sharpen applies an unsharp mask over a 3x3 neighborhood:
//
//	v = orig + amount/100 * (orig - blur(orig))
//
// where blur is the mean of the 3x3 window with edges clamped
// (out-of-bounds taps re-read the nearest edge pixel). All
// neighborhood reads go against an immutable snapshot taken before
// the pass, never against partially-updated pixels, so the result is
// independent of visit order.
func Sharpen(px []uint8, width, height int, amount float64) {
	if width <= 0 || height <= 0 || amount == 0 {
		return
	}

	snap := make([]uint8, len(px))
	copy(snap, px)

	strength := amount / 100

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					sx := clampIndex(x+dx, width)
					sy := clampIndex(y+dy, height)
					si := (sy*width + sx) * 3
					sumR += float64(snap[si])
					sumG += float64(snap[si+1])
					sumB += float64(snap[si+2])
				}
			}

			i := (y*width + x) * 3
			r := float64(snap[i])
			g := float64(snap[i+1])
			b := float64(snap[i+2])

			px[i] = clamp8(r + strength*(r-sumR/9))
			px[i+1] = clamp8(g + strength*(g-sumG/9))
			px[i+2] = clamp8(b + strength*(b-sumB/9))
		}
	}
}

// clampIndex clamps a coordinate to [0, n) for edge extension.
func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
