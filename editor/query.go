package editor

import (
	"math"

	"github.com/lumiviz/freeform"
	"github.com/lumiviz/freeform/overlay"
)

// DistanceQuery is the answer to "which curve is the cursor closest to?".
// Dist is in pixels. Seg and Wt locate the nearest point on the target, as
// in freeform.Projection. Target is nil if no curve came within reach.
type DistanceQuery struct {
	Dist   float64
	Seg    int
	Wt     float64
	Target *overlay.Freeform
}

// NearEndNode is true if the nearest point is the target's head or tail
// node. Head and tail are where drawing may be resumed, as opposed to the
// interior, which is reworked through a tendril.
func (q DistanceQuery) NearEndNode() bool {
	if q.Target == nil {
		return false
	}
	return (q.Seg == 0 && q.Wt == 0) || (q.Seg == q.Target.N()-2 && q.Wt == 1)
}

// mapToPixel runs a node list through the view transform.
func mapToPixel(v View, nodes []freeform.Pair) []freeform.Pair {
	px := make([]freeform.Pair, len(nodes))
	for i, p := range nodes {
		px[i] = v.DomainToPixel(p)
	}
	return px
}

// closestFreeform scans the curves at the event's position and returns the
// one nearest to the cursor, ignoring curves farther than thresh pixels.
// Earlier curves win ties, as do earlier segments within a curve.
func closestFreeform(sc *overlay.Scene, ev Event, thresh float64) DistanceQuery {
	q := DistanceQuery{Dist: math.Inf(1), Seg: -1}
	cursor := ev.Pixel()
	for _, f := range sc.FreeformsAt(ev.Pos) {
		pj, ok := freeform.Project(mapToPixel(ev.View, f.Nodes()), cursor)
		if ok && pj.Dist < thresh && pj.Dist < q.Dist {
			q = DistanceQuery{Dist: pj.Dist, Seg: pj.Seg, Wt: pj.Wt, Target: f}
		}
	}
	return q
}

// projectChunk projects the cursor onto a chunk of nodes, in pixel space.
// Chunks of fewer than two nodes yield an infinite distance.
func projectChunk(v View, chunk []freeform.Pair, cursor freeform.Pair) freeform.Projection {
	pj, _ := freeform.Project(mapToPixel(v, chunk), cursor)
	return pj
}
