package editor

import (
	"math"

	"github.com/lumiviz/freeform"
	"github.com/lumiviz/freeform/overlay"
)

// Gesture thresholds, in pixels. Distances are always judged in pixel
// space, so the feel of a gesture does not change with the zoom level.
const (
	DrawThreshold      = 2.0  // minimum cursor travel before a node is appended
	EraseThreshold     = 10.0 // reach of the eraser, and of the press query
	EditThreshold      = 6.0  // maximum distance for grabbing a curve's interior
	ReconnectThreshold = 1.0  // distance at which a tendril tip snaps back onto the curve
	ResumeThreshold    = 10.0 // maximum distance for resuming at a curve's end
)

// Smoothing weighs the sampled cursor position against the last node when
// drawing. Larger values follow the cursor more eagerly.
const Smoothing = 0.35

func smooth(u, prev freeform.Pair) freeform.Pair {
	return u.Scaled(Smoothing) + prev.Scaled(1-Smoothing)
}

// session is the complete state of a gesture in flight. Handlers take a
// session and return the successor state, so every transition is explicit.
type session struct {
	mode    Mode
	curve   *overlay.Freeform   // the curve being drawn or reworked
	others  []*overlay.Freeform // join candidates while drawing
	tendril Tendril
	pre     []freeform.Pair // nodes below the tendril, reconnect targets
	post    []freeform.Pair // nodes above the tendril, reconnect targets
	down    freeform.Pair   // press position, for curves created lazily
}

// Tool interprets mouse gestures on a scene of freeform curves. Feed it
// Press, Drag and Release events from the hosting display; it mutates the
// scene and notifies the scene's listeners after every event.
//
// A Tool is not safe for concurrent use. Events are expected in the order
// the mouse produces them.
type Tool struct {
	scene *overlay.Scene
	cur   session
}

// NewTool creates an idle tool working on a scene.
func NewTool(sc *overlay.Scene) *Tool {
	return &Tool{scene: sc, cur: session{tendril: noTendril()}}
}

// Mode returns what the current gesture is doing, Idle if none is in flight.
func (t *Tool) Mode() Mode {
	return t.cur.mode
}

// Press starts a gesture.
func (t *Tool) Press(ev Event) {
	t.cur = t.press(t.cur, ev)
	t.scene.NotifyChanged()
	t.scene.RefreshControls()
}

// Drag continues a gesture.
func (t *Tool) Drag(ev Event) {
	t.cur = t.drag(t.cur, ev)
	t.scene.NotifyChanged()
}

// Release ends a gesture.
func (t *Tool) Release(ev Event) {
	t.cur = t.release(t.cur, ev)
	t.scene.NotifyChanged()
	t.scene.RefreshControls()
}

func (t *Tool) press(st session, ev Event) session {
	if ev.Mods.Erase() {
		st.curve = nil
		return t.enter(st, Erasing, ev)
	}
	q := closestFreeform(t.scene, ev, EraseThreshold)
	if q.Target == nil {
		st.down = ev.Domain
		return t.enter(st, Init, ev)
	}
	if q.NearEndNode() && q.Dist < ResumeThreshold {
		if q.Seg == 0 { // grabbed the head: flip so drawing appends at the tail
			q.Target.Reverse()
		}
		st.curve = q.Target
		return t.enter(st, Drawing, ev)
	}
	if q.Dist < EditThreshold {
		st.curve = q.Target
		st = beginEdit(st, q)
		return t.enter(st, Editing, ev)
	}
	tracer().Debugf("press at %.1f px from curve %d, too far for anything", q.Dist, q.Target.ID())
	return st
}

// beginEdit splices a tendril into the grabbed curve. At an existing node
// the node is doubled; in mid-segment the nearest point on the segment is
// inserted twice. Either way the curve's shape is unchanged and the two
// fresh nodes delimit the tendril.
//
// The nodes on each side of the splice are snapshotted as the pre and post
// chunks. They are what a grown tendril may later reconnect to; the nodes
// adjoining the splice are left out so the tip cannot snap back onto its
// own anchor.
func beginEdit(st session, q DistanceQuery) session {
	f := q.Target
	var lo, hi int
	if q.Wt == 1 {
		a := f.Node(q.Seg + 1)
		f.InsertAt(q.Seg+2, a)
		st.tendril = newTendril(q.Seg+1, q.Seg+2, true, f.Version())
		lo, hi = q.Seg, q.Seg+3
	} else {
		s := freeform.Lerp(f.Node(q.Seg), f.Node(q.Seg+1), q.Wt)
		f.InsertAt(q.Seg+1, s, s)
		st.tendril = newTendril(q.Seg+1, q.Seg+2, false, f.Version())
		lo, hi = q.Seg+1, q.Seg+3
	}
	nodes := f.Nodes()
	st.pre = nodes[:lo]
	st.post = nodes[hi:]
	return st
}

func (t *Tool) drag(st session, ev Event) session {
	if st.mode == Init { // first drag after a press on empty canvas
		f := overlay.NewFreeform(st.down, st.down)
		t.scene.Add(f, ev.Pos)
		st.curve = f
		st = t.enter(st, Drawing, ev)
	}
	if st.mode == Drawing && ev.Mods.Erase() {
		if st.curve != nil {
			st.curve.Trim()
		}
		st = t.enter(st, Erasing, ev)
	}
	switch st.mode {
	case Drawing:
		return t.dragDraw(st, ev)
	case Erasing:
		return t.dragErase(st, ev)
	case Editing:
		return t.dragEdit(st, ev)
	}
	return st
}

// dragDraw appends to the tracked curve, or joins it to another curve whose
// end the cursor has touched.
func (t *Tool) dragDraw(st session, ev Event) session {
	cursor := ev.Pixel()
	var best *overlay.Freeform
	minDist := math.Inf(1)
	closerToHead := false
	for _, other := range st.others {
		hd := freeform.Dist(cursor, ev.View.DomainToPixel(other.Head()))
		tl := freeform.Dist(cursor, ev.View.DomainToPixel(other.Tail()))
		if d := math.Min(hd, tl); d < minDist {
			minDist = d
			best = other
			closerToHead = hd < tl
		}
	}
	if best != nil && minDist < DrawThreshold {
		st = t.connect(st, ev, best, closerToHead)
		return t.enter(st, Idle, ev)
	}
	if freeform.Dist(cursor, ev.View.DomainToPixel(st.curve.Tail())) > DrawThreshold {
		st.curve.Append(smooth(ev.Domain, st.curve.Tail()))
	}
	return st
}

// connect merges the tracked curve with another one, tail to end. The other
// curve is flipped first if the cursor touched its tail, so its nodes run
// away from the junction.
func (t *Tool) connect(st session, ev Event, other *overlay.Freeform, head bool) session {
	if !head {
		other.Reverse()
	}
	tracer().Debugf("joining curve %d onto %d", other.ID(), st.curve.ID())
	merged := overlay.NewFreeform(append(st.curve.Nodes(), other.Nodes()...)...)
	t.scene.Remove(st.curve)
	t.scene.Remove(other)
	t.scene.Add(merged, ev.Pos)
	st.curve = merged
	return st
}

// dragErase removes the node nearest to the cursor, within the eraser's
// reach. Erasing an interior node splits the curve; fragments of a single
// node are discarded. Releasing the erase modifier mid-drag switches back
// to drawing.
func (t *Tool) dragErase(st session, ev Event) session {
	if !ev.Mods.Erase() {
		if st.curve == nil {
			return t.enter(st, Idle, ev)
		}
		return t.enter(st, Drawing, ev)
	}
	thresh := EraseThreshold * ev.View.Multiplier() // eraser reach in curve coordinates
	var hit *overlay.Freeform
	hitIdx := -1
	minDist := math.Inf(1)
	for _, f := range t.scene.FreeformsAt(ev.Pos) {
		if i, d := f.NearestNode(ev.Domain); d < thresh && d < minDist {
			minDist = d
			hit = f
			hitIdx = i
		}
	}
	if hit == nil {
		return st
	}
	frag := hit.RemoveNode(hitIdx)
	if hit.N() <= 1 {
		t.scene.Remove(hit)
		if st.curve == hit {
			st.curve = nil
		}
	}
	if frag != nil && frag.N() > 1 {
		t.scene.Add(frag, hit.Position())
	}
	return st
}

// dragEdit grows the tendril towards the cursor, or reconnects its tip when
// the cursor comes to rest on the curve's pre or post chunk.
func (t *Tool) dragEdit(st session, ev Event) session {
	f := st.curve
	if !st.tendril.consistentWith(f) {
		tracer().Errorf("curve %d changed underneath an edit gesture, retracting", f.ID())
		return t.enter(st, Idle, ev)
	}
	cursor := ev.Pixel()
	td := st.tendril
	ref := f.Node(td.Start)
	if td.Started() {
		ref = f.Node(td.Tip)
	}
	travel := freeform.Dist(cursor, ev.View.DomainToPixel(ref))

	pre := projectChunk(ev.View, st.pre, cursor)
	post := projectChunk(ev.View, st.post, cursor)
	closerToPost := post.Dist < pre.Dist

	if math.Min(pre.Dist, post.Dist) > ReconnectThreshold {
		if travel > DrawThreshold {
			s := smooth(ev.Domain, ref)
			if !td.Started() {
				f.InsertAt(td.Stop, s)
				st.tendril = td.begun(f.Version())
			} else {
				f.InsertAt(td.Tip+1, s, ref)
				st.tendril = td.extended(f.Version())
			}
		}
		return st
	}
	if ev.Mods.Precise() || !td.Started() {
		return st
	}

	// Reconnect: attach the tip at the projected point and drop everything
	// strictly between tip and attachment. Chunk indices translate into
	// curve indices directly for pre, shifted past the tendril for post.
	pj, offset := pre, 0
	if closerToPost {
		pj, offset = post, td.Stop+1
	}
	var end int
	switch {
	case pj.Wt == 0:
		end = pj.Seg + offset
	case pj.Wt == 1:
		end = pj.Seg + 1 + offset
	default:
		s := freeform.Lerp(f.Node(pj.Seg+offset), f.Node(pj.Seg+1+offset), pj.Wt)
		at := pj.Seg + 1 + offset
		f.InsertAt(at, s)
		if !closerToPost { // insertion below Start shifts the tendril up
			td = td.shifted(1, f.Version())
		}
		end = at
	}
	tracer().Debugf("reconnecting tip %d of curve %d at node %d", td.Tip, f.ID(), end)
	f.DeleteRange(min(td.Tip, end)+1, max(td.Tip, end))
	f.Refresh()
	return t.enter(st, Idle, ev)
}

func (t *Tool) release(st session, ev Event) session {
	switch st.mode {
	case Drawing:
		if st.curve != nil {
			st.curve.Trim()
		}
	case Editing:
		// A release mid-air retracts the tendril: the spliced nodes are
		// removed and, for a nodal splice, the doubled node is put back.
		if td := st.tendril; td.consistentWith(st.curve) {
			c := st.curve.Node(td.Start)
			st.curve.DeleteRange(td.Start, td.Stop+1)
			if td.Nodal {
				st.curve.InsertAt(td.Start, c)
			}
		} else {
			tracer().Errorf("curve changed underneath an edit gesture, nothing to retract")
		}
	}
	if st.mode != Idle {
		st = t.enter(st, Idle, ev)
	}
	return st
}

// enter performs the side effects of a mode transition and returns the
// state with the new mode set.
func (t *Tool) enter(st session, m Mode, ev Event) session {
	tracer().Debugf("mode %v -> %v", st.mode, m)
	switch m {
	case Drawing:
		t.scene.DeselectAll()
		if st.curve != nil {
			st.curve.SetDrawing(true)
			st.curve.SetSelected(true)
		}
		st.others = t.othersAt(ev.Pos, st.curve)
	case Editing:
		t.scene.DeselectAll()
		if st.curve != nil {
			st.curve.SetDrawing(true)
			st.curve.SetSelected(true)
		}
		st.others = nil
	case Erasing:
		t.scene.DeselectAll()
	case Idle:
		st = t.settle(st)
	}
	st.mode = m
	return st
}

// settle releases the gesture's grip on its curve. Curves that never got a
// shape are dropped from the scene, all others stay selected.
func (t *Tool) settle(st session) session {
	st.others = nil
	st.tendril = noTendril()
	st.pre, st.post = nil, nil
	if st.curve != nil {
		st.curve.SetDrawing(false)
		if !st.curve.HasData() {
			t.scene.Remove(st.curve)
		} else {
			st.curve.Refresh()
			st.curve.SetSelected(true)
		}
		st.curve = nil
	}
	return st
}

func (t *Tool) othersAt(pos []int, except *overlay.Freeform) []*overlay.Freeform {
	var others []*overlay.Freeform
	for _, f := range t.scene.FreeformsAt(pos) {
		if f != except {
			others = append(others, f)
		}
	}
	return others
}
