// Package region clips and normalizes rectangular regions before any pixel
// is touched, and reports the area a compositing call actually covered.
//
// CorrectRegion is the single place where a proposed copy is reconciled
// with the source and destination extents. Every compositing entry point in
// package blit routes through it, so the hot loops never re-validate.
package region

import (
	"fmt"

	"github.com/gogpu/pixcore/geom"
)

// Perimeter is a rectangle tagged with the process and shape that produced
// it. Compositing calls return one to describe the pixels they touched.
type Perimeter struct {
	X, Y, W, H int

	ProcessID string
	ShapeID   string
	Priority  int
}

// Empty is the perimeter of a call that touched nothing.
var Empty = Perimeter{}

// NewPerimeter creates an untagged perimeter. A zero or negative width or
// height collapses to Empty.
func NewPerimeter(x, y, w, h int) Perimeter {
	if w <= 0 || h <= 0 {
		return Empty
	}
	return Perimeter{X: x, Y: y, W: w, H: h}
}

// FromRect creates an untagged perimeter from r.
func FromRect(r geom.Rectangle) Perimeter {
	return NewPerimeter(r.X, r.Y, r.W, r.H)
}

// IsEmpty reports whether p covers no pixels.
func (p Perimeter) IsEmpty() bool { return p.W <= 0 || p.H <= 0 }

// Rect returns the covered rectangle.
func (p Perimeter) Rect() geom.Rectangle { return geom.Rect(p.X, p.Y, p.W, p.H) }

// Tag returns p with ownership information attached. Tagging Empty keeps it
// Empty.
func (p Perimeter) Tag(processID, shapeID string, priority int) Perimeter {
	if p.IsEmpty() {
		return Empty
	}
	p.ProcessID, p.ShapeID, p.Priority = processID, shapeID, priority
	return p
}

// Union returns the perimeter covering p and o. The owner of p is kept
// unless p is empty.
func (p Perimeter) Union(o Perimeter) Perimeter {
	switch {
	case p.IsEmpty():
		return o
	case o.IsEmpty():
		return p
	}
	r := p.Rect().Union(o.Rect())
	p.X, p.Y, p.W, p.H = r.X, r.Y, r.W, r.H
	return p
}

func (p Perimeter) String() string {
	if p.IsEmpty() {
		return "Perimeter(empty)"
	}
	return fmt.Sprintf("Perimeter(%d,%d %dx%d %s/%s p%d)", p.X, p.Y, p.W, p.H, p.ProcessID, p.ShapeID, p.Priority)
}
