package common

import "github.com/jakecoffman/cp"

// Box returns the rectangle with top-left corner (x, y) and the given size.
// Coordinates are screen-space (y grows downward): L/R are the left and
// right edges, B is the top edge (min y) and T the bottom edge (max y).
// Negative sizes are normalized so L <= R and B <= T.
func Box(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x, T: y}.Expand(cp.Vector{X: x + w, Y: y + h})
}

// Overlaps reports whether a and b share interior area. Rectangles that only
// touch along an edge do not overlap, unlike cp.BB.Intersects.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R &&
		a.R > b.L &&
		a.B < b.T &&
		a.T > b.B
}

// Top returns the top edge (min y) of a Box.
func Top(bb cp.BB) float64 {
	return bb.B
}

// Bottom returns the bottom edge (max y) of a Box.
func Bottom(bb cp.BB) float64 {
	return bb.T
}
