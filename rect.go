package freeform

import "fmt"

// === Bounding Boxes ========================================================

// Rect is an axis-aligned bounding box. Boxes are grown incrementally
// while curve nodes are appended; start from EmptyRect, not from the
// zero value (which covers the single point at origin).
type Rect struct {
	Min, Max Pair
}

const inf = 1e308

// EmptyRect returns the neutral element for Extend and Union: a box
// containing no points at all.
func EmptyRect() Rect {
	return Rect{Min: P(inf, inf), Max: P(-inf, -inf)}
}

// Empty is a predicate: does the box contain no points?
func (r Rect) Empty() bool {
	return r.Min.X() > r.Max.X() || r.Min.Y() > r.Max.Y()
}

// Extend returns the smallest box covering both r and the point p.
func (r Rect) Extend(p Pair) Rect {
	return Rect{
		Min: P(min(r.Min.X(), p.X()), min(r.Min.Y(), p.Y())),
		Max: P(max(r.Max.X(), p.X()), max(r.Max.Y(), p.Y())),
	}
}

// Union returns the smallest box covering both r and s.
func (r Rect) Union(s Rect) Rect {
	if s.Empty() {
		return r
	}
	return r.Extend(s.Min).Extend(s.Max)
}

// Contains is a predicate: does the box cover point p? Boundary points
// count as covered.
func (r Rect) Contains(p Pair) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// Width of the box, 0 for an empty box.
func (r Rect) Width() float64 {
	if r.Empty() {
		return 0
	}
	return r.Max.X() - r.Min.X()
}

// Height of the box, 0 for an empty box.
func (r Rect) Height() float64 {
	if r.Empty() {
		return 0
	}
	return r.Max.Y() - r.Min.Y()
}

func (r Rect) String() string {
	if r.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%s--%s]", r.Min, r.Max)
}
