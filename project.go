package freeform

import "math"

// === Nearest-Point Queries =================================================

// Projection locates the closest point of a polyline relative to some
// query point: Seg indexes the start node of the winning segment, and Wt
// in [0,1] is the parametric position of the closest point on that
// segment (0 = segment start, 1 = segment end).
//
// Ties between segments go to the earlier one. A query point nearest an
// interior node is therefore reported on the preceding segment with
// Wt == 1; Wt is never exactly 0 unless Seg == 0.
type Projection struct {
	Dist float64 // distance from the query point to the closest point
	Seg  int     // index of the winning segment's start node
	Wt   float64 // parametric position on the winning segment
}

// nearestOnSegment projects p onto the segment a--b, clamping the
// parameter to [0,1]. Returns the squared distance and the parameter.
// Clamped cases measure against the endpoint itself, so equally distant
// neighbour segments produce bit-identical distances and the tie rule
// in Project stays exact. Degenerate segments (a = b) fall into the
// t = 0 clamp.
func nearestOnSegment(a, b, p Pair) (float64, float64) {
	d := b - a
	dd := d.X()*d.X() + d.Y()*d.Y()
	v := p - a
	dotp := v.X()*d.X() + v.Y()*d.Y()
	if dotp <= 0 {
		return v.X()*v.X() + v.Y()*v.Y(), 0
	}
	if dotp >= dd {
		w := p - b
		return w.X()*w.X() + w.Y()*w.Y(), 1
	}
	t := dotp / dd
	w := p - Lerp(a, b, t)
	return w.X()*w.X() + w.Y()*w.Y(), t
}

// Project finds the closest point on a polyline. The boolean is false
// for polylines with fewer than 2 nodes; callers treat those as
// infinitely far away.
func Project(poly []Pair, p Pair) (Projection, bool) {
	if len(poly) < 2 {
		return Projection{Dist: math.Inf(1), Seg: -1}, false
	}
	best := Projection{Seg: -1}
	bestSq := math.Inf(1)
	for i := 0; i+1 < len(poly); i++ {
		sq, t := nearestOnSegment(poly[i], poly[i+1], p)
		if sq < bestSq {
			bestSq = sq
			best.Seg = i
			best.Wt = t
		}
	}
	best.Dist = math.Sqrt(bestSq)
	return best, true
}

// NearestNode returns index and distance of the polyline node closest
// to p; the first of equally distant nodes wins. Returns (-1, +Inf) for
// an empty polyline.
func NearestNode(poly []Pair, p Pair) (int, float64) {
	idx, bestSq := -1, math.Inf(1)
	for i, q := range poly {
		v := p - q
		sq := v.X()*v.X() + v.Y()*v.Y()
		if sq < bestSq {
			bestSq = sq
			idx = i
		}
	}
	if idx < 0 {
		return -1, math.Inf(1)
	}
	return idx, math.Sqrt(bestSq)
}
