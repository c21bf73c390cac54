package freeform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// diff compares want and got and fails the test with a readable diff.
// Pairs are unpacked into their float coordinates so that approximate
// float comparison applies to them, too.
func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts,
		cmp.Transformer("pairxy", func(p Pair) [2]float64 {
			return [2]float64{p.X(), p.Y()}
		}),
		cmpopts.EquateApprox(0, 1e-9),
	)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
