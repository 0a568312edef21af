// Package blit is the pixel block compositing engine of pixcore.
//
// Every pixel write goes through this package. A call names a destination
// buffer, a source buffer (or a constant value, or no source at all) and a
// block to move, plus Options selecting how each pixel is decided:
//
//   - Command flags: Opaque overwrites without alpha maths, Backdrop only
//     paints where the destination is still empty, InvertColor XORs the
//     written colour with color.InvertMask, Clear writes without a source.
//   - A Condition compares the current destination value against a
//     threshold and skips the pixel when it does not match.
//   - For color.Rgba buffers, per-pixel alpha from the source scaled by an
//     optional coverage Mask and a global Alpha.
//
// The block is first reconciled with both buffers by region.CorrectRegion,
// then processed one row at a time; each row is re-clamped against the
// remaining source and destination lengths so a short final row can never
// be over-read. Calls never fail: a block that clips away is a no-op and
// the returned region.Perimeter is empty.
//
// Buffers are caller owned. The engine neither allocates nor retains them,
// and two calls must not write overlapping regions of one buffer at the
// same time.
package blit

import "errors"

// Errors returned by buffer constructors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("blit: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than the width.
	ErrInvalidStride = errors.New("blit: stride too small for width")

	// ErrDataTooSmall is returned when a slice cannot hold the declared
	// geometry.
	ErrDataTooSmall = errors.New("blit: data buffer too small")
)
