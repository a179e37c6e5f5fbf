package cine

import "errors"

// Error taxonomy for the decode-filter-encode sequence.
//
// Tonal operators themselves never fail: every numeric path is total
// and clamped. Errors can only arise at the codec boundary or from a
// structurally unusable buffer, and none of them are retryable.
var (
	// ErrDecode is returned when input bytes are not a valid or
	// complete image.
	ErrDecode = errors.New("cine: decode: invalid image data")

	// ErrInvalidImage is returned when a raster has zero width or
	// height, or is otherwise structurally unusable.
	ErrInvalidImage = errors.New("cine: invalid image buffer")

	// ErrEncode is returned when producing output bytes fails.
	ErrEncode = errors.New("cine: encode failed")

	// ErrInvalidDimensions is returned when a raster is constructed
	// with non-positive width or height.
	ErrInvalidDimensions = errors.New("cine: invalid dimensions")
)
