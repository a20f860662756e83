package common

import (
	"testing"

	"github.com/jakecoffman/cp"
	"gotest.tools/v3/assert"
)

func TestBox(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       cp.BB
	}{
		{name: "positive", x: 2, y: 3, w: 4, h: 5, want: cp.BB{L: 2, B: 3, R: 6, T: 8}},
		{name: "negative_width", x: 2, y: 3, w: -4, h: 5, want: cp.BB{L: -2, B: 3, R: 2, T: 8}},
		{name: "negative_height", x: 0, y: 0, w: 1, h: -1, want: cp.BB{L: 0, B: -1, R: 1, T: 0}},
		{name: "zero", x: 7, y: 7, want: cp.BB{L: 7, B: 7, R: 7, T: 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Box(tc.x, tc.y, tc.w, tc.h)
			assert.Equal(t, got, tc.want)
			assert.Equal(t, Top(got), tc.want.B)
			assert.Equal(t, Bottom(got), tc.want.T)
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := Box(0, 0, 10, 10)
	tests := []struct {
		name string
		b    cp.BB
		want bool
	}{
		{name: "inside", b: Box(2, 2, 2, 2), want: true},
		{name: "partial", b: Box(9, 9, 5, 5), want: true},
		{name: "edge_touch", b: Box(10, 0, 5, 10), want: false},
		{name: "corner_touch", b: Box(10, 10, 5, 5), want: false},
		{name: "apart", b: Box(20, 20, 1, 1), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Overlaps(a, tc.b), tc.want)
			assert.Equal(t, Overlaps(tc.b, a), tc.want)
		})
	}

	// cp treats touching edges as intersecting.
	assert.Assert(t, a.Intersects(Box(10, 0, 5, 10)))
}
