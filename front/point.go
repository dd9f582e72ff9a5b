// SPDX-License-Identifier: MIT

package front

import (
	"math"
	"slices"
)

// Point is an ordered tuple of objective values. The dimension of a point is
// its length; Reduce is the only way it changes, and only downward.
type Point []float64

// Dim returns the number of objectives of p.
func (p Point) Dim() int { return len(p) }

// Reduce returns p with its last objective dropped. The result aliases p.
// Reducing a zero-dimensional point returns it unchanged.
func (p Point) Reduce() Point {
	if len(p) == 0 {
		return p
	}

	return p[:len(p)-1]
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Beats reports whether objective value x is strictly better than y.
// Every comparison in this module goes through Beats, so exactly tied values
// never beat each other.
func Beats(x, y float64) bool { return x > y }

// Worse returns the worse of two objective values.
func Worse(x, y float64) float64 {
	if Beats(y, x) {
		return x
	}

	return y
}

// Dominates reports whether p dominates q on objectives 0..k, i.e. q beats p
// on none of them. The test is one-way and weak: equal points dominate each
// other. k must be < min(len(p), len(q)).
//
// Complexity: O(k).
func Dominates(p, q Point, k int) bool {
	var i int
	for i = k; i >= 0; i-- {
		if Beats(q[i], p[i]) {
			return false
		}
	}

	return true
}

// CompareWorsening orders points descending, lexicographically from the last
// objective backward: the point with the better last objective comes first,
// ties fall through to the previous objective. Both points must share a
// dimension.
func CompareWorsening(p, q Point) int {
	var i int
	for i = len(p) - 1; i >= 0; i-- {
		if Beats(p[i], q[i]) {
			return -1
		}
		if Beats(q[i], p[i]) {
			return 1
		}
	}

	return 0
}

// SortWorsening sorts points in place by CompareWorsening. The sort is stable
// so identical points keep their relative order.
func SortWorsening(points []Point) {
	slices.SortStableFunc(points, CompareWorsening)
}

// IsFinite reports whether every objective of p is a finite number.
func (p Point) IsFinite() bool {
	for _, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
