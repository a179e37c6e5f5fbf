package cine

import (
	"bytes"
	"errors"
	"testing"
)

// gradientRaster builds a smooth test image; smooth content keeps
// JPEG round-trip error small and predictable.
func gradientRaster(t *testing.T, w, h int) *Raster {
	t.Helper()
	r, err := NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.SetRGB(x, y, uint8(x*255/w), uint8(y*255/h), uint8((x+y)*255/(w+h)))
		}
	}
	return r
}

func TestDecodeMalformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not an image")},
		{"truncated png magic", []byte{0x89, 'P', 'N', 'G'}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("Decode error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := gradientRaster(t, 64, 48)

	data, err := Encode(r)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Encode produced no bytes")
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Width() != 64 || back.Height() != 48 {
		t.Fatalf("round trip dims = %dx%d, want 64x48", back.Width(), back.Height())
	}

	// Lossy tolerance: mean absolute difference under 5 per channel
	// at quality 95.
	var sum float64
	for i := range r.Data() {
		d := int(r.Data()[i]) - int(back.Data()[i])
		if d < 0 {
			d = -d
		}
		sum += float64(d)
	}
	mad := sum / float64(len(r.Data()))
	if mad >= 5 {
		t.Errorf("mean absolute difference = %.2f, want < 5", mad)
	}
}

func TestEncodePNGIsLossless(t *testing.T) {
	r := gradientRaster(t, 16, 16)

	data, err := EncodePNG(r)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(r.Data(), back.Data()) {
		t.Error("PNG round trip changed pixel data")
	}
}

func TestEncodeEmptyRaster(t *testing.T) {
	for _, r := range []*Raster{nil, new(Raster)} {
		if _, err := Encode(r); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("Encode(empty) error = %v, want ErrInvalidImage", err)
		}
		if _, err := EncodePNG(r); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("EncodePNG(empty) error = %v, want ErrInvalidImage", err)
		}
	}
}

func TestEncodeQualityClamped(t *testing.T) {
	r := gradientRaster(t, 8, 8)

	for _, q := range []int{-10, 0, 1, 50, 100, 250} {
		data, err := EncodeQuality(r, q)
		if err != nil {
			t.Fatalf("EncodeQuality(%d): %v", q, err)
		}
		if _, err := Decode(data); err != nil {
			t.Errorf("EncodeQuality(%d) output does not decode: %v", q, err)
		}
	}
}

func TestDecodePNGInput(t *testing.T) {
	// The boundary auto-detects formats; losslessly encoded input must
	// come back bit-exact.
	r := gradientRaster(t, 10, 10)
	data, err := EncodePNG(r)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Width() != 10 || back.Height() != 10 {
		t.Errorf("dims = %dx%d, want 10x10", back.Width(), back.Height())
	}
}
