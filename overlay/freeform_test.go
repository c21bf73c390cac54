package overlay

import (
	"math"
	"testing"

	"github.com/lumiviz/freeform"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAppendGrowsLengthBySegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(0, 0))
	want := 0.0
	pts := []freeform.Pair{freeform.P(3, 4), freeform.P(3, 10), freeform.P(-1, 10)}
	for _, p := range pts {
		want += freeform.Dist(f.Tail(), p)
		f.Append(p)
		assert.InDelta(t, want, f.Length(), 1e-12)
	}
	// incremental bookkeeping must agree with a full recomputation
	f.Refresh()
	assert.InDelta(t, want, f.Length(), 1e-12)
}

func TestAppendGrowsBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(1, 1))
	f.Append(freeform.P(4, -2))
	f.Append(freeform.P(0, 3))
	b := f.Bounds()
	assert.Equal(t, freeform.P(0, -2), b.Min)
	assert.Equal(t, freeform.P(4, 3), b.Max)
}

func TestReverseTwiceRestoresOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	nodes := []freeform.Pair{freeform.P(0, 0), freeform.P(1, 2), freeform.P(3, 1), freeform.P(5, 5)}
	f := NewFreeform(nodes...)
	f.Reverse()
	assert.Equal(t, freeform.P(5, 5), f.Head())
	f.Reverse()
	assert.Equal(t, nodes, f.Nodes())
}

func TestInsertAtReturnsUpdatedIndex(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(0, 0), freeform.P(10, 0))
	next := f.InsertAt(1, freeform.P(5, 0), freeform.P(5, 1))
	assert.Equal(t, 3, next)
	assert.Equal(t, freeform.P(10, 0), f.Node(next))
	assert.Equal(t, []freeform.Pair{
		freeform.P(0, 0), freeform.P(5, 0), freeform.P(5, 1), freeform.P(10, 0),
	}, f.Nodes())
}

func TestDeleteRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(0, 0), freeform.P(1, 0), freeform.P(2, 0), freeform.P(3, 0))
	n := f.DeleteRange(1, 3)
	assert.Equal(t, 2, n)
	assert.Equal(t, []freeform.Pair{freeform.P(0, 0), freeform.P(3, 0)}, f.Nodes())
	assert.InDelta(t, 3.0, f.Length(), 1e-12)

	v := f.Version()
	assert.Equal(t, 0, f.DeleteRange(1, 1), "empty range must be a no-op")
	assert.Equal(t, v, f.Version())
	assert.Equal(t, 2, f.DeleteRange(-5, 99), "out-of-range indices clamp")
	assert.Equal(t, 0, f.N())
}

func TestRemoveNodeSplits(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(0, 0), freeform.P(1, 0), freeform.P(2, 0), freeform.P(3, 0))
	frag := f.RemoveNode(1)
	assert.Equal(t, []freeform.Pair{freeform.P(0, 0)}, f.Nodes())
	if assert.NotNil(t, frag) {
		assert.Equal(t, []freeform.Pair{freeform.P(2, 0), freeform.P(3, 0)}, frag.Nodes())
	}

	g := NewFreeform(freeform.P(0, 0), freeform.P(1, 0))
	assert.Nil(t, g.RemoveNode(1), "removing the tail leaves no fragment")
	assert.Equal(t, 1, g.N())
}

func TestTrimReleasesCapacity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(0, 0))
	for i := 1; i <= 5; i++ {
		f.Append(freeform.P(float64(i), 0))
	}
	f.Trim()
	assert.Equal(t, len(f.nodes), cap(f.nodes))
}

func TestHasData(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.False(t, NewFreeform().HasData())
	assert.False(t, NewFreeform(freeform.P(1, 1)).HasData())
	// the two coincident nodes a fresh drawing gesture starts from
	assert.False(t, NewFreeform(freeform.P(1, 1), freeform.P(1, 1)).HasData())
	assert.True(t, NewFreeform(freeform.P(1, 1), freeform.P(2, 1)).HasData())
}

func TestVersionAdvances(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(0, 0), freeform.P(1, 0))
	v := f.Version()
	f.Append(freeform.P(2, 0))
	assert.Greater(t, f.Version(), v)
	v = f.Version()
	f.InsertAt(1, freeform.P(0.5, 0))
	assert.Greater(t, f.Version(), v)
	v = f.Version()
	f.Reverse()
	assert.Greater(t, f.Version(), v)
}

func TestNearestNodeDelegates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFreeform(freeform.P(0, 0), freeform.P(10, 0), freeform.P(20, 0))
	i, d := f.NearestNode(freeform.P(9, 1))
	assert.Equal(t, 1, i)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)
}
