// Package geom provides the integer and float value types shared by the
// pixcore geometry kernel and compositing engine: points, sizes, rectangles
// and spans.
//
// All types are immutable values. Constructors never fail; out-of-range or
// NaN input produces an invalid value whose Valid method reports false. The
// validity flag is computed once at construction and is authoritative.
//
// Integer types use image coordinates (origin top-left, Y grows down). Float
// types use float32 to match pixel-space precision and are converted to the
// integer types with the explicit conversion methods in convert.go, never
// implicitly.
package geom
