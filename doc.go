// Package pixcore is the geometry kernel and pixel compositing engine of a
// 2D graphics toolkit.
//
// # Overview
//
// A renderer converts a shape into scanline spans (package scan), clips
// them against the target (package region) and hands each span to the
// compositing engine (package blit), consulting the conic solver (package
// curve) for arcs, ellipses and stroke outlines. Package geom holds the
// shared numeric primitives and package color the packed RGBA model.
//
// # Quick Start
//
//	tables := pixcore.Init()
//
//	dst, _ := blit.NewBuffer[color.Rgba](256, 256)
//	red := tables.Palette.Get("red")
//
//	arc := curve.NewConic(geom.RectF(28, 28, 200, 200), 0, 0, 0)
//	blit.FillPolygon(dst, arc.Pie(2), red, blit.Options[color.Rgba]{})
//
// # Setup
//
// Init builds the colour palette and the slope reciprocal table. Both are
// read-only afterwards; call Init once before rendering starts and pass the
// returned Tables to whatever needs them.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees; positive angles turn clockwise on screen
//
// # Concurrency
//
// Everything is synchronous. Buffers are caller owned; two calls must not
// write overlapping regions of one buffer at the same time.
package pixcore

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
