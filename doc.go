// Package cine implements the Cine-V3 filter: a deterministic,
// multi-stage tonal grading pipeline for photographic images.
//
// # Overview
//
// cine transforms a decoded RGB raster into a cinematically graded
// output through a fixed sequence of tonal operators (saturation,
// brightness, unsharp-mask sharpening, contrast, highlight/shadow
// shaping, levels, white balance, hue rotation). The pipeline is a
// pure function from image buffer to image buffer: it performs no
// capture, display, or persistence.
//
// # Quick Start
//
//	import "github.com/pixfx/cine"
//
//	// Grade encoded image bytes in one call
//	out, err := cine.CineV3().Process(input)
//
//	// Or drive the stages explicitly
//	r, err := cine.Decode(input)
//	if err != nil { ... }
//	if err := cine.CineV3().Apply(r); err != nil { ... }
//	out, err := cine.Encode(r)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Raster, Params, Decode, Encode
//   - Internal: tonal (the per-pixel and neighborhood operators)
//
// # Determinism
//
// Every operator is a total function: all arithmetic happens in
// float64 and results are truncated and clamped to [0, 255] before
// storage. Running the pipeline twice on the same input produces
// identical output. No state is shared between invocations.
//
// # Concurrency
//
// A Raster has a single logical owner while the pipeline runs; no
// internal locking is performed. Callers wanting to keep a UI
// responsive should dispatch Process onto a background goroutine.
package cine

// Version information
const (
	// Version is the current version of the library
	Version = "1.3.0"

	// PresetName identifies the built-in grading preset.
	PresetName = "Cine-V3"
)
