package cine

import (
	"image"
	"image/color"
)

// Raster is a mutable rectangular pixel buffer with three 8-bit
// channels per pixel (R, G, B), stored row-major in a contiguous
// slice. It is the unit every tonal operator works on.
//
// Channel values are always integers in [0, 255] after each pass;
// intermediate arithmetic happens in float64 inside the operators.
type Raster struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

// NewRaster creates a raster with the given dimensions.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}, nil
}

// Width returns the width of the raster in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Data returns the raw pixel data (RGB, 3 bytes per pixel).
// Modifying the slice modifies the raster.
func (r *Raster) Data() []uint8 {
	return r.data
}

// RGB returns the channel values of a single pixel.
// Out-of-bounds coordinates return black.
func (r *Raster) RGB(x, y int) (red, green, blue uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0, 0, 0
	}
	i := (y*r.width + x) * 3
	return r.data[i], r.data[i+1], r.data[i+2]
}

// SetRGB sets the channel values of a single pixel.
// Out-of-bounds coordinates are ignored.
func (r *Raster) SetRGB(x, y int, red, green, blue uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 3
	r.data[i] = red
	r.data[i+1] = green
	r.data[i+2] = blue
}

// Fill sets every pixel to the given color.
func (r *Raster) Fill(red, green, blue uint8) {
	for i := 0; i < len(r.data); i += 3 {
		r.data[i] = red
		r.data[i+1] = green
		r.data[i+2] = blue
	}
}

// Clone creates a deep copy of the raster. The sharpen stage uses this
// to snapshot the buffer before its neighborhood pass.
func (r *Raster) Clone() *Raster {
	data := make([]uint8, len(r.data))
	copy(data, r.data)
	return &Raster{
		width:  r.width,
		height: r.height,
		data:   data,
	}
}

// IsEmpty returns true if the raster has zero dimensions.
func (r *Raster) IsEmpty() bool {
	return r == nil || r.width == 0 || r.height == 0 || len(r.data) == 0
}

// FromImage creates a raster from any image.Image, dropping alpha.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	r := &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}

	// Fast path for NRGBA images (what the decoders produce)
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			src := nrgba.Pix[y*nrgba.Stride:]
			dst := r.data[y*width*3:]
			for x := 0; x < width; x++ {
				dst[x*3+0] = src[x*4+0]
				dst[x*3+1] = src[x*4+1]
				dst[x*3+2] = src[x*4+2]
			}
		}
		return r
	}

	// Generic slow path for any image type
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			cr, cg, cb, _ := c.RGBA()
			i := (y*width + x) * 3
			// RGBA() returns 16-bit values, scale to 8-bit
			r.data[i+0] = uint8(cr >> 8)
			r.data[i+1] = uint8(cg >> 8)
			r.data[i+2] = uint8(cb >> 8)
		}
	}
	return r
}

// ToImage converts the raster to an opaque image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		src := r.data[y*r.width*3:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < r.width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return img
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	red, green, blue := r.RGB(x, y)
	return color.NRGBA{R: red, G: green, B: blue, A: 255}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}
