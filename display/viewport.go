// Package display maps between the coordinates curves live in and screen
// pixels. Viewport implements the editor's View and prepares editor events
// from raw mouse positions, so a hosting GUI only has to forward its native
// events.
package display

import (
	"github.com/lumiviz/freeform"
	"github.com/lumiviz/freeform/editor"
)

// Viewport is an affine window onto the curve plane: coordinates are scaled
// by a zoom factor, then shifted by a pan offset in pixels. The zoom must
// be positive. The zero Viewport is not usable, create one with NewViewport.
type Viewport struct {
	fwd  freeform.AT
	back freeform.AT
	zoom float64
}

// NewViewport creates a viewport with the given zoom factor and pan offset.
// Zoom 1 and pan (0,0) is the identity view.
func NewViewport(zoom float64, pan freeform.Pair) Viewport {
	return Viewport{
		fwd:  freeform.Scaling(zoom, zoom).Combine(freeform.Translation(pan)),
		back: freeform.Translation(-pan).Combine(freeform.Scaling(1/zoom, 1/zoom)),
		zoom: zoom,
	}
}

// DomainToPixel maps a point in curve coordinates onto the screen.
func (v Viewport) DomainToPixel(p freeform.Pair) freeform.Pair {
	return v.fwd.Transform(p)
}

// PixelToDomain maps a screen position into curve coordinates. Inverse of
// DomainToPixel.
func (v Viewport) PixelToDomain(p freeform.Pair) freeform.Pair {
	return v.back.Transform(p)
}

// Multiplier returns the length of one pixel in curve coordinates.
func (v Viewport) Multiplier() float64 {
	return 1 / v.zoom
}

// MouseEvent prepares an editor event from a raw mouse position. pos tags
// the dataset slice currently shown.
func (v Viewport) MouseEvent(px, py int, pos []int, mods editor.ModMask) editor.Event {
	return editor.Event{
		View:   v,
		PX:     px,
		PY:     py,
		Domain: v.PixelToDomain(freeform.P(float64(px), float64(py))),
		Pos:    pos,
		Mods:   mods,
	}
}
