package editor

import "github.com/lumiviz/freeform/overlay"

// noTip marks a tendril that has been spliced in but not pulled anywhere yet.
const noTip = -1

// Tendril describes the stretch of extra nodes spliced into a curve during
// an interior edit. Start and Stop index the first and last spliced node,
// Tip the node the user is dragging (noTip before the first pull). Nodal
// records whether the splice happened at an existing node, which then has
// to be restored when the tendril is retracted.
//
// A Tendril is a value: growing or shifting it yields a new one. Each such
// step records the curve's version, so that a tendril can tell when its
// indices have gone stale.
type Tendril struct {
	Start, Stop, Tip int
	Nodal            bool
	epoch            uint64
}

func noTendril() Tendril {
	return Tendril{Tip: noTip}
}

func newTendril(start, stop int, nodal bool, epoch uint64) Tendril {
	return Tendril{Start: start, Stop: stop, Tip: noTip, Nodal: nodal, epoch: epoch}
}

// Started is true once the tendril has been pulled away from the curve.
func (td Tendril) Started() bool {
	return td.Tip != noTip
}

// begun accounts for the first pull: one node inserted between Start and
// Stop, becoming the tip.
func (td Tendril) begun(epoch uint64) Tendril {
	td.Tip = td.Start + 1
	td.Stop++
	td.epoch = epoch
	return td
}

// extended accounts for a further pull: a new tip plus a copy of the old
// one, inserted after the old tip so that the stretch doubles back.
func (td Tendril) extended(epoch uint64) Tendril {
	td.Tip++
	td.Stop += 2
	td.epoch = epoch
	return td
}

// shifted moves all indices by some offset, after an insertion below Start.
func (td Tendril) shifted(by int, epoch uint64) Tendril {
	td.Start += by
	td.Stop += by
	td.Tip += by
	td.epoch = epoch
	return td
}

// consistentWith is true if the curve has not changed since the tendril
// last recorded its version, i.e. the indices still mean what they meant.
func (td Tendril) consistentWith(f *overlay.Freeform) bool {
	return f != nil && td.epoch == f.Version()
}
