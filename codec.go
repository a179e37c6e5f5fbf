package cine

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"

	// Registered so Decode recognizes the formats capture devices and
	// galleries commonly hand over alongside JPEG and PNG.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// EncodeQualityDefault is the fixed JPEG quality used by Encode.
const EncodeQualityDefault = 95

// Decode turns encoded image bytes into a Raster, auto-detecting the
// format. EXIF orientation from capture devices is applied during
// decode so the raster is always upright.
//
// Returns an error wrapping ErrDecode if the bytes are not a
// recognized, complete image.
func Decode(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	r := FromImage(img)
	if r.IsEmpty() {
		return nil, fmt.Errorf("%w: zero-dimension image", ErrDecode)
	}
	return r, nil
}

// Encode serializes the raster as JPEG at the fixed preset quality.
// This is lossy and one-directional: Encode(Decode(b)) is not required
// to reproduce b, but Decode(Encode(r)) preserves dimensions exactly
// and channel values within compression tolerance.
func Encode(r *Raster) ([]byte, error) {
	return EncodeQuality(r, EncodeQualityDefault)
}

// EncodeQuality serializes the raster as JPEG at the given quality,
// clamped to [1, 100].
func EncodeQuality(r *Raster, quality int) ([]byte, error) {
	if r.IsEmpty() {
		return nil, ErrInvalidImage
	}
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, r.ToImage(), &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// EncodePNG serializes the raster as lossless PNG.
func EncodePNG(r *Raster) ([]byte, error) {
	if r.IsEmpty() {
		return nil, ErrInvalidImage
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, r.ToImage()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
