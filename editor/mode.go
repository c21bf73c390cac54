package editor

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

// Mode identifies what a gesture in flight is doing. A Tool starts out Idle
// and returns to Idle when the gesture completes.
type Mode int

const (
	Idle    Mode = iota // no gesture in flight
	Init                // pressed on empty canvas, no curve created yet
	Drawing             // appending nodes to a curve
	Editing             // reworking a curve's interior through a tendril
	Erasing             // rubbing out nodes
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Init:
		return "init"
	case Drawing:
		return "drawing"
	case Editing:
		return "editing"
	case Erasing:
		return "erasing"
	}
	return "<unknown mode>"
}

// ModMask carries the modifier keys held during an event.
type ModMask uint8

const (
	ModErase   ModMask = 1 << iota // erase instead of draw
	ModPrecise                     // suppress reconnecting while editing
)

// Erase is true if the erase modifier is held.
func (mm ModMask) Erase() bool {
	return mm&ModErase != 0
}

// Precise is true if the precision modifier is held.
func (mm ModMask) Precise() bool {
	return mm&ModPrecise != 0
}
