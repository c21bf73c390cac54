package freeform

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Pair Data Type ========================================================

// Pair is a 2D-point or 2D-vector, backed by a complex number. Both
// curve coordinates and pixel coordinates travel as Pairs; the viewport in
// package display converts between the two spaces.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	px := real(p.C())
	py := imag(p.C())
	return px, py
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return (p + v).Zap()
}

// Dist returns the Euclidean distance between two pairs.
func Dist(p, q Pair) float64 {
	return math.Hypot(q.X()-p.X(), q.Y()-p.Y())
}

// Lerp linearly interpolates between a and b: the point a + t·(b−a).
// With t being the weight of a Projection, Lerp reproduces the closest
// point on the projected segment.
func Lerp(a, b Pair, t float64) Pair {
	return a + (b - a).Scaled(t)
}
