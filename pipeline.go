package cine

import (
	"time"

	"github.com/pixfx/cine/internal/tonal"
)

// Apply runs the nine grading stages over the raster in place, in
// fixed order, each stage consuming the previous stage's output. The
// same buffer is returned mutated through r; only the sharpen stage
// takes a full-size snapshot for its neighborhood reads.
//
// Returns ErrInvalidImage if the raster has zero width or height.
// The stages themselves cannot fail: every numeric path is total and
// clamped. Reordering the stages changes the output; the sequence is
// part of the preset.
func (p Params) Apply(r *Raster) error {
	if r.IsEmpty() {
		return ErrInvalidImage
	}

	log := Logger()
	px := r.Data()
	stages := []struct {
		name string
		fn   func()
	}{
		{"saturation_contrast", func() { tonal.SaturationContrast(px, p.Saturation, p.ContrastPrimary) }},
		{"brightness_1", func() { tonal.Brightness(px, p.Brightness1) }},
		{"sharpen", func() { tonal.Sharpen(px, r.Width(), r.Height(), p.SharpenAmount) }},
		{"contrast_2", func() { tonal.Contrast(px, 1+p.ContrastSecondary) }},
		{"brightness_2", func() { tonal.Brightness(px, p.Brightness2) }},
		{"highlights_shadows", func() { tonal.HighlightsShadows(px, p.Highlights, p.Shadows) }},
		{"levels", func() { tonal.Levels(px, p.BlackPoint, p.WhitePoint) }},
		{"temperature", func() { tonal.Temperature(px, p.Temperature) }},
		{"hue", func() { tonal.HueRotate(px, p.HueShift) }},
	}

	for _, stage := range stages {
		start := time.Now()
		stage.fn()
		log.Debug("stage complete",
			"stage", stage.name,
			"width", r.Width(),
			"height", r.Height(),
			"elapsed", time.Since(start))
	}

	return nil
}

// Process runs the full decode-filter-encode sequence on encoded image
// bytes and returns the graded result as JPEG bytes at the preset
// quality. Either the whole sequence completes or the call fails with
// one of ErrDecode, ErrInvalidImage or ErrEncode before any output is
// produced; no internal retries are performed.
func (p Params) Process(data []byte) ([]byte, error) {
	start := time.Now()

	r, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(r); err != nil {
		return nil, err
	}
	out, err := Encode(r)
	if err != nil {
		return nil, err
	}

	Logger().Debug("process complete",
		"width", r.Width(),
		"height", r.Height(),
		"in_bytes", len(data),
		"out_bytes", len(out),
		"elapsed", time.Since(start))
	return out, nil
}
