// SPDX-License-Identifier: MIT

package bottomk

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/iwfg/front"
)

// Slab is one horizontal band of a candidate's exclusive region: a thickness
// along the last objective and the points that bound the candidate inside
// the band, one objective lower.
//
// The payload is either borrowed from the caller's rows (the root slab that
// seeds decomposition) or owned: a deep copy with the last objective gone.
type Slab struct {
	Weight float64
	points []front.Point
	owned  bool
}

// Len returns the number of points bounding the slab.
func (s Slab) Len() int { return len(s.points) }

// Points returns the slab's points. They must not be modified.
func (s Slab) Points() []front.Point { return s.points }

// Owned reports whether the slab holds its own copy of the points.
func (s Slab) Owned() bool { return s.owned }

// rootSlab wraps the sorted rows of every other point without copying them.
func rootSlab(rest []front.Point) Slab {
	return Slab{Weight: 1, points: rest}
}

// ownedSlab deep-copies the first dim objectives of ql into one flat buffer.
func ownedSlab(weight float64, ql []front.Point, dim int) Slab {
	s := Slab{Weight: weight, owned: true}
	if len(ql) == 0 {
		return s
	}

	data := make([]float64, len(ql)*dim)
	s.points = make([]front.Point, len(ql))
	for i, q := range ql {
		row := data[i*dim : (i+1)*dim : (i+1)*dim]
		copy(row, q[:dim])
		s.points[i] = row
	}

	return s
}

// Decompose splits the exclusive region of z into slabs along its last
// objective. rest holds every other point of the front in worsening order
// (front.SortWorsening) and is only read.
//
// Sweeping rest from the top, the current level v starts at z's last
// objective. Each point whose last objective v strictly beats closes the
// band between the two values; the band is bounded by the points seen so
// far, kept non-dominated and ordered on the second-to-last objective. The
// sweep stops as soon as a point covers z on every other objective, since
// nothing of z survives below it. Otherwise a final band reaches down to the
// reference point.
//
// The slabs come back sorted by weight, heaviest first; equal weights keep
// sweep order.
//
// Complexity: O(m²·n) time, O(m²·n) memory for the copies in the worst case.
func Decompose(z front.Point, rest []front.Point) []Slab {
	var (
		root      = rootSlab(rest)
		last      = len(z) - 1
		cover     = max(last-1, 0)
		v         = z[last]
		ql        = make([]front.Point, 0, root.Len())
		slabs     []Slab
		dominated bool
		j         int
	)
	for j = 0; j < root.Len() && !dominated; j++ {
		p := root.points[j]

		// 1) a strictly lower level closes the band above it.
		if front.Beats(v, p[last]) {
			slabs = append(slabs, ownedSlab(math.Abs(v-p[last]), ql, last))
			v = p[last]
		}

		// 2) p bounds every band below its own level.
		if last > 0 {
			ql = insertOnKDesc(ql, p, last-1)
		} else {
			ql = append(ql, p)
		}

		// 3) once p covers z, no lower band contributes.
		dominated = front.Dominates(p, z, cover)
	}
	if !dominated {
		slabs = append(slabs, ownedSlab(math.Abs(v), ql, last))
	}

	slices.SortStableFunc(slabs, func(a, b Slab) int {
		return cmp.Compare(b.Weight, a.Weight)
	})

	return slabs
}

// insertOnKDesc inserts p into ql, which is ordered descending on objective
// k, and drops the entries after it that p dominates on objectives 0..k.
// Entries ahead of p beat it on k and cannot be dominated by it.
func insertOnKDesc(ql []front.Point, p front.Point, k int) []front.Point {
	var ins, j int
	for ins < len(ql) && front.Beats(ql[ins][k], p[k]) {
		ins++
	}

	ql = append(ql, nil)
	copy(ql[ins+1:], ql[ins:])
	ql[ins] = p

	kept := ins + 1
	for j = ins + 1; j < len(ql); j++ {
		if !front.Dominates(p, ql[j], k) {
			ql[kept] = ql[j]
			kept++
		}
	}
	clear(ql[kept:])

	return ql[:kept]
}
