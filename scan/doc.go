// Package scan converts edges and polygons into scanline geometry.
//
// Two line kinds feed the compositing engine: AxisLine, a single run
// perpendicular to one axis, and OddEvenLine, a sorted set of crossings
// whose consecutive pairs alternate between fill and no-fill under the
// even-odd rule. Both satisfy Line, and Spans flattens any mix of them into
// runs that map directly onto rectangles for blit.
//
// Polygon scan-fills a point list at pixel centres; Hairline steps a one
// pixel line with the fixed-point slopes of a curve.SlopeTable. ClipPolygon
// and ClipHairline do the same work limited to a destination rectangle.
package scan
