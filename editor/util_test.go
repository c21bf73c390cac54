package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lumiviz/freeform"
	"github.com/lumiviz/freeform/overlay"
)

// testView zooms uniformly around the origin, without panning.
type testView struct {
	zoom float64
}

func (v testView) DomainToPixel(p freeform.Pair) freeform.Pair {
	return p.Scaled(v.zoom)
}

func (v testView) Multiplier() float64 {
	return 1 / v.zoom
}

// at builds the event a mouse at pixel (x,y) would produce.
func (v testView) at(x, y int, mods ModMask) Event {
	return Event{
		View: v, PX: x, PY: y,
		Domain: freeform.P(float64(x)/v.zoom, float64(y)/v.zoom),
		Pos:    []int{0, 0},
		Mods:   mods,
	}
}

type countingListener struct {
	calls int
}

func (l *countingListener) SceneChanged(s *overlay.Scene) {
	l.calls++
}

type countingControls struct {
	calls int
}

func (c *countingControls) RefreshSelection(s *overlay.Scene) {
	c.calls++
}

// pts builds a node list from flat x,y coordinates.
func pts(xy ...float64) []freeform.Pair {
	ps := make([]freeform.Pair, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		ps = append(ps, freeform.P(xy[i], xy[i+1]))
	}
	return ps
}

func addCurve(t *testing.T, sc *overlay.Scene, nodes ...freeform.Pair) *overlay.Freeform {
	t.Helper()
	f := overlay.NewFreeform(nodes...)
	sc.Add(f, []int{0, 0})
	return f
}

func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts,
		cmp.Transformer("pairxy", func(p freeform.Pair) [2]float64 {
			return [2]float64{p.X(), p.Y()}
		}),
		cmpopts.EquateApprox(0, 1e-9),
	)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
