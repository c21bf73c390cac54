// Package region turns closed freeform outlines into plane regions that
// can be combined with boolean set operations, measured and tested for
// containment.
/*

A freeform curve drawn around something encloses an area. This package
makes that area tangible: Of closes a curve's outline into a Region, Box
spans a rectangular one, and regions combine by union, intersection,
difference and symmetric difference. The boolean operations are performed
by the polyclip package, an implementation of

   F. Martinez, A.J. Rueda, F.R. Feito: A new algorithm for computing
   Boolean operations on polygons.
   Computers & Geosciences 35 (2009)

Interiors follow the even-odd rule throughout, so self-crossing outlines
and regions with holes behave consistently between Area and Contains.

BSD License

Copyright (c) the Lumiviz Authors

All rights reserved.

Please refer to the license file for more information.
*/
package region

import (
	"errors"
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/lumiviz/freeform"
	"github.com/lumiviz/freeform/overlay"
	"github.com/npillmayer/schuko/tracing"
)

// L returns a tracer with key 'region'.
func L() tracing.Trace {
	return tracing.Select("region")
}

// ErrTooFewNodes flags outlines that cannot enclose an area.
var ErrTooFewNodes = errors.New("not enough nodes to enclose an area")

// Region is a set of points in the plane, bounded by one or more closed
// contours. The zero Region is empty and valid.
type Region struct {
	poly polyclip.Polygon
}

// Of closes a freeform curve's outline, tail back to head, and returns the
// enclosed region. Curves of fewer than 3 nodes have nothing to enclose.
func Of(f *overlay.Freeform) (Region, error) {
	if f == nil {
		return Region{}, fmt.Errorf("%w: no freeform", ErrTooFewNodes)
	}
	if f.N() < 3 {
		return Region{}, fmt.Errorf("%w: freeform has %d", ErrTooFewNodes, f.N())
	}
	c := make(polyclip.Contour, 0, f.N())
	for _, p := range f.Nodes() {
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return Region{poly: polyclip.Polygon{c}}, nil
}

// Box returns the rectangular region spanned by two opposite corners, in
// any corner order.
func Box(p1, p2 freeform.Pair) Region {
	x1, x2 := min(p1.X(), p2.X()), max(p1.X(), p2.X())
	y1, y2 := min(p1.Y(), p2.Y()), max(p1.Y(), p2.Y())
	c := polyclip.Contour{
		{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2},
	}
	return Region{poly: polyclip.Polygon{c}}
}

// N returns the total number of vertices over all contours.
func (r Region) N() int {
	n := 0
	for _, c := range r.poly {
		n += len(c)
	}
	return n
}

// Bounds returns the bounding box of the region.
func (r Region) Bounds() freeform.Rect {
	box := freeform.EmptyRect()
	for _, c := range r.poly {
		for _, p := range c {
			box = box.Extend(freeform.P(p.X, p.Y))
		}
	}
	return box
}

// Area returns the area covered by the region. Holes count negatively, by
// way of their opposite winding.
func (r Region) Area() float64 {
	a := 0.0
	for _, c := range r.poly {
		a += ringArea(c)
	}
	return math.Abs(a)
}

// ringArea is the signed shoelace sum of one contour.
func ringArea(c polyclip.Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Contains reports whether a point lies in the region's interior, by the
// even-odd rule. Points exactly on a contour may land on either side.
func (r Region) Contains(p freeform.Pair) bool {
	x, y := p.F()
	inside := false
	for _, c := range r.poly {
		n := len(c)
		for i := 0; i < n; i++ {
			a, b := c[i], c[(i+1)%n]
			if (a.Y > y) != (b.Y > y) {
				t := (y - a.Y) / (b.Y - a.Y)
				if x < a.X+t*(b.X-a.X) {
					inside = !inside
				}
			}
		}
	}
	return inside
}

// Union returns the region covered by either operand.
func (r Region) Union(other Region) Region {
	return r.combine(polyclip.UNION, other)
}

// Intersect returns the region covered by both operands.
func (r Region) Intersect(other Region) Region {
	return r.combine(polyclip.INTERSECTION, other)
}

// Subtract returns the receiver's region minus the argument's.
func (r Region) Subtract(other Region) Region {
	return r.combine(polyclip.DIFFERENCE, other)
}

// Xor returns the region covered by exactly one operand.
func (r Region) Xor(other Region) Region {
	return r.combine(polyclip.XOR, other)
}

func (r Region) combine(op polyclip.Op, other Region) Region {
	res := Region{poly: r.poly.Construct(op, other.poly)}
	L().Debugf("combine op %d: %d and %d contours -> %d", op, len(r.poly), len(other.poly), len(res.poly))
	return res
}

// AsString returns a region's contours in a MetaPost-like cycle notation,
// e.g. "(0,0) -- (4,0) -- (4,5) -- (0,5) -- cycle".
func AsString(r Region) string {
	if len(r.poly) == 0 {
		return "nullpath"
	}
	var sb strings.Builder
	for i, c := range r.poly {
		if i > 0 {
			sb.WriteString(" & ")
		}
		for _, p := range c {
			fmt.Fprintf(&sb, "(%g,%g) -- ", p.X, p.Y)
		}
		sb.WriteString("cycle")
	}
	return sb.String()
}
