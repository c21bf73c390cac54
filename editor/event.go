package editor

import "github.com/lumiviz/freeform"

// View maps curve coordinates to pixels. The editor needs it to judge
// distances in pixel space, where gesture thresholds live. Implementations
// are provided by the hosting display, e.g. a viewport transform.
type View interface {
	DomainToPixel(freeform.Pair) freeform.Pair // curve coordinates -> pixels
	Multiplier() float64                       // length of one pixel in curve coordinates
}

// Event is one mouse event, prepared by the hosting display. PX/PY is the
// cursor in pixels, Domain the same cursor mapped into curve coordinates.
// Pos tags the slice of a multi-dimensional dataset the cursor is on; the
// editor only ever works on curves tagged with the event's Pos.
type Event struct {
	View   View
	PX, PY int
	Domain freeform.Pair
	Pos    []int
	Mods   ModMask
}

// Pixel returns the cursor position as a pair in pixel space.
func (ev Event) Pixel() freeform.Pair {
	return freeform.P(float64(ev.PX), float64(ev.PY))
}
