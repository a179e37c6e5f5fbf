package tonal

import "testing"

func TestLevelsRemap(t *testing.T) {
	tests := []struct {
		name string
		in   uint8
		want uint8
	}{
		{"black point maps to 0", 7, 0},
		{"white point maps to 255", 252, 255},
		{"below black clamps", 0, 0},
		{"above white clamps", 255, 255},
		{"midtone stretches", 134, 132}, // (134-7)*255/245 = 132.18
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			px := pixel(tc.in, tc.in, tc.in)
			Levels(px, 7, 252)
			for i, v := range px {
				if v != tc.want {
					t.Errorf("channel %d = %d, want %d", i, v, tc.want)
				}
			}
		})
	}
}

func TestLevelsDegenerateRangeIsNoop(t *testing.T) {
	for _, bw := range []struct{ black, white float64 }{
		{128, 128},
		{200, 100},
	} {
		px := pixel(42, 128, 250)
		orig := clonePixels(px)

		Levels(px, bw.black, bw.white)

		for i := range px {
			if px[i] != orig[i] {
				t.Errorf("black=%v white=%v: channel %d = %d, want %d (no-op)",
					bw.black, bw.white, i, px[i], orig[i])
			}
		}
	}
}

func TestLevelsElementwisePerChannel(t *testing.T) {
	// Levels runs on R, G and B independently; there is no implicit
	// alpha channel to skip in an RGB buffer.
	px := pixel(7, 129, 252)
	Levels(px, 7, 252)

	want := []uint8{0, 126, 255} // (129-7)*255/245 = 126.97
	for i, w := range want {
		if px[i] != w {
			t.Errorf("channel %d = %d, want %d", i, px[i], w)
		}
	}
}
