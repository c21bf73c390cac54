package display

import (
	"testing"

	"github.com/lumiviz/freeform"
	"github.com/lumiviz/freeform/editor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestViewportIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := NewViewport(1, freeform.Origin)
	p := freeform.P(3, -4)
	assert.Equal(t, p, v.DomainToPixel(p))
	assert.Equal(t, p, v.PixelToDomain(p))
	assert.Equal(t, 1.0, v.Multiplier())
}

func TestViewportZoomAndPan(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := NewViewport(2, freeform.P(100, 50))
	assert.Equal(t, freeform.P(106, 58), v.DomainToPixel(freeform.P(3, 4)))
	assert.Equal(t, freeform.P(3, 4), v.PixelToDomain(freeform.P(106, 58)))
	assert.Equal(t, 0.5, v.Multiplier())
}

func TestMouseEvent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := NewViewport(2, freeform.P(100, 50))
	ev := v.MouseEvent(106, 58, []int{2, 1}, editor.ModErase)
	assert.Equal(t, 106, ev.PX)
	assert.Equal(t, 58, ev.PY)
	assert.Equal(t, freeform.P(106, 58), ev.Pixel())
	assert.Equal(t, freeform.P(3, 4), ev.Domain)
	assert.Equal(t, []int{2, 1}, ev.Pos)
	assert.True(t, ev.Mods.Erase())
	assert.False(t, ev.Mods.Precise())
	assert.Equal(t, v, ev.View)
}
