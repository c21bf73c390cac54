package freeform

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform for 2D-points. The six coefficients are the
// first two rows of a 3x3 matrix, flattened by rows; the third row is
// implicitly [0 0 1]:
//
//	| a b c |   x' = a·x + b·y + c
//	| d e f |   y' = d·x + e·y + f
type AT [6]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	return AT{1, 0, p.X(), 0, 1, p.Y()}
}

// Scaling transform. Scale a point by sx horizontally and sy vertically,
// relative to the origin.
func Scaling(sx, sy float64) AT {
	return AT{sx, 0, 0, 0, sy, 0}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	return AT{cos, -sin, 0, sin, cos, 0}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// Combine 2 affine transformations to a new one: the receiver is applied
// first, the argument second. Returns a new transformation without
// changing the argument(s).
func (m AT) Combine(n AT) AT {
	return AT{
		n[0]*m[0] + n[1]*m[3],
		n[0]*m[1] + n[1]*m[4],
		n[0]*m[2] + n[1]*m[5] + n[2],
		n[3]*m[0] + n[4]*m[3],
		n[3]*m[1] + n[4]*m[4],
		n[3]*m[2] + n[4]*m[5] + n[5],
	}
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}
