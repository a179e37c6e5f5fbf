package tonal

import "math"

// HueRotate rotates every pixel's hue by the given number of degrees
// in HSV space, preserving saturation and value. A rotation of 0 is an
// identity transform within one integer level of truncation.
//
// HSV was chosen over a YIQ matrix approximation: the round trip
// through exact HSV keeps gray pixels exactly gray and never shifts
// luminance, which matters after the levels stage has already set the
// tonal range.
func HueRotate(px []uint8, degrees float64) {
	for i := 0; i+2 < len(px); i += 3 {
		h, s, v := rgbToHSV(float64(px[i]), float64(px[i+1]), float64(px[i+2]))

		h += degrees
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}

		r, g, b := hsvToRGB(h, s, v)
		px[i] = clamp8(r)
		px[i+1] = clamp8(g)
		px[i+2] = clamp8(b)
	}
}

// rgbToHSV converts channel values in [0, 255] to hue in [0, 360),
// saturation in [0, 1] and value in [0, 255].
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v = max
	if max > 0 {
		s = delta / max
	}

	if delta == 0 {
		return 0, s, v
	}

	switch max {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// hsvToRGB converts back to channel values in [0, 255].
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}
