// Package overlay holds the data model for freeform curve overlays: the
// curve entity itself and the scene registry the curves live in. Curves
// are mutated exclusively through the operations below; every mutation
// bumps a version counter so that collaborators holding indices into a
// curve (such as an in-progress edit) can detect interference.
package overlay

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lumiviz/freeform"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'overlay'
func tracer() tracing.Trace {
	return tracing.Select("overlay")
}

// Freeform is a hand-drawn curve: an ordered sequence of domain-space
// nodes, together with cached derived quantities (polyline length and
// bounding box) and the display flags a host widget renders from.
//
// Node indices are plain positions into the sequence. Operations taking
// indices expect them to be valid for the current sequence; they are the
// caller's responsibility, as is re-deriving any held index after a
// mutation (watch Version).
type Freeform struct {
	id       int
	pos      []int // dimensional position tag, assigned by the scene
	nodes    []freeform.Pair
	version  uint64
	length   float64
	bounds   freeform.Rect
	stale    bool // length/bounds need recomputing
	drawing  bool
	selected bool
}

// NewFreeform creates a curve from the given nodes. The node buffer is
// allocated with growth room for interactive appending.
func NewFreeform(nodes ...freeform.Pair) *Freeform {
	f := &Freeform{
		nodes: make([]freeform.Pair, len(nodes), len(nodes)+16),
	}
	copy(f.nodes, nodes)
	f.recompute()
	return f
}

// N returns the number of nodes.
func (f *Freeform) N() int {
	return len(f.nodes)
}

// Node returns the node at index i.
func (f *Freeform) Node(i int) freeform.Pair {
	return f.nodes[i]
}

// Head returns the first node.
func (f *Freeform) Head() freeform.Pair {
	return f.nodes[0]
}

// Tail returns the last node.
func (f *Freeform) Tail() freeform.Pair {
	return f.nodes[len(f.nodes)-1]
}

// Nodes returns a copy of the node sequence.
func (f *Freeform) Nodes() []freeform.Pair {
	return slices.Clone(f.nodes)
}

// Version returns the mutation counter. It increases with every change
// to the node sequence.
func (f *Freeform) Version() uint64 {
	return f.version
}

// Append extends the curve at its tail. Length and bounding box grow
// incrementally: length increases by exactly the distance from the
// previous tail to p.
func (f *Freeform) Append(p freeform.Pair) {
	if n := len(f.nodes); n > 0 && !f.stale {
		f.length += freeform.Dist(f.nodes[n-1], p)
		f.bounds = f.bounds.Extend(p)
	} else if n == 0 {
		f.bounds = freeform.EmptyRect().Extend(p)
	}
	f.nodes = append(f.nodes, p)
	f.version++
}

// InsertAt inserts the given nodes before index i and returns the index
// just past the inserted run, i.e. the new position of the node that was
// at i before the call.
func (f *Freeform) InsertAt(i int, pts ...freeform.Pair) int {
	f.nodes = slices.Insert(f.nodes, i, pts...)
	f.version++
	f.stale = true
	return i + len(pts)
}

// DeleteRange removes the half-open node range [i,j). Indices are
// clamped to the sequence; an empty range is a no-op. Returns the number
// of nodes removed.
func (f *Freeform) DeleteRange(i, j int) int {
	i = max(i, 0)
	j = min(j, len(f.nodes))
	if j <= i {
		return 0
	}
	f.nodes = slices.Delete(f.nodes, i, j)
	f.version++
	f.stale = true
	return j - i
}

// Reverse flips the node order in place. Length and bounding box are
// unaffected. Reversing twice restores the original order exactly.
func (f *Freeform) Reverse() {
	slices.Reverse(f.nodes)
	f.version++
}

// RemoveNode erases the node at index i, splitting the curve: the
// receiver keeps the nodes before i, and the nodes after i are returned
// as a fresh fragment curve (nil if there are none). Either part may
// end up too short to keep; retention is the caller's policy.
func (f *Freeform) RemoveNode(i int) *Freeform {
	var frag *Freeform
	if tail := f.nodes[i+1:]; len(tail) > 0 {
		frag = NewFreeform(tail...)
	}
	f.nodes = f.nodes[:i]
	f.version++
	f.stale = true
	return frag
}

// NearestNode returns index and distance of the node closest to p.
func (f *Freeform) NearestNode(p freeform.Pair) (int, float64) {
	return freeform.NearestNode(f.nodes, p)
}

// Length returns the cumulative polyline length over all segments.
func (f *Freeform) Length() float64 {
	if f.stale {
		f.recompute()
	}
	return f.length
}

// Bounds returns the bounding box over all nodes.
func (f *Freeform) Bounds() freeform.Rect {
	if f.stale {
		f.recompute()
	}
	return f.bounds
}

// Refresh recomputes length and bounding box from the node sequence.
func (f *Freeform) Refresh() {
	f.recompute()
}

func (f *Freeform) recompute() {
	f.length = 0
	f.bounds = freeform.EmptyRect()
	for i, p := range f.nodes {
		if i > 0 {
			f.length += freeform.Dist(f.nodes[i-1], p)
		}
		f.bounds = f.bounds.Extend(p)
	}
	f.stale = false
}

// Trim finalizes the node buffer, releasing spare capacity accumulated
// during interactive appending.
func (f *Freeform) Trim() {
	f.nodes = slices.Clip(f.nodes)
}

// HasData is a predicate: does the curve carry drawable geometry? A
// curve needs at least two nodes and nonzero length; in particular the
// two coincident nodes a drawing gesture starts from do not count as
// data yet.
func (f *Freeform) HasData() bool {
	return len(f.nodes) >= 2 && f.Length() > 0
}

// SetSelected marks the curve as (de)selected for the host's list and
// highlight handling.
func (f *Freeform) SetSelected(sel bool) {
	f.selected = sel
}

// Selected returns the selection flag.
func (f *Freeform) Selected() bool {
	return f.selected
}

// SetDrawing marks the curve as being under construction by a gesture.
func (f *Freeform) SetDrawing(d bool) {
	f.drawing = d
}

// Drawing returns the under-construction flag.
func (f *Freeform) Drawing() bool {
	return f.drawing
}

// ID returns the scene-assigned object id, 0 before the curve enters a
// scene.
func (f *Freeform) ID() int {
	return f.id
}

// Position returns the dimensional position tag the curve was added at.
func (f *Freeform) Position() []int {
	return f.pos
}

// Stringer for debugging; node lists are elided beyond a few nodes.
func (f *Freeform) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "freeform #%d", f.id)
	for i, p := range f.nodes {
		if i == 4 && len(f.nodes) > 5 {
			fmt.Fprintf(&sb, " -- … -- %s", f.nodes[len(f.nodes)-1])
			break
		}
		if i == 0 {
			fmt.Fprintf(&sb, " %s", p)
		} else {
			fmt.Fprintf(&sb, " -- %s", p)
		}
	}
	return sb.String()
}
