package wfg

import (
	"slices"

	"github.com/katalvlaran/iwfg/front"
)

// Engine evaluates hypervolumes using a stack of reusable scratch fronts.
// The zero value is ready to use; NewEngine pre-sizes the scratch.
type Engine struct {
	stack []*front.Front // stack[d] holds the limit set built at depth d
	dead  [][]bool       // dead[d] marks dominated rows of stack[d]
	depth int            // number of scratch fronts in use

	// Capacity hints applied to every scratch front on first use.
	maxM, maxN int
}

// NewEngine returns an Engine whose scratch is pre-sized for fronts of up to
// maxPoints points in maxObjectives objectives. Larger inputs are still
// accepted; the scratch grows to fit them.
func NewEngine(maxPoints, maxObjectives int) *Engine {
	return &Engine{maxM: max(maxPoints, 0), maxN: max(maxObjectives, 0)}
}

// Inclusive returns the hypervolume of the single point p, the product of
// its objectives. A zero-dimensional point has volume 1.
func Inclusive(p front.Point) float64 {
	var v = 1.0
	for _, x := range p {
		v *= x
	}

	return v
}

// Volume returns the hypervolume of all points of f in f.Dim() objectives.
// It reorders the points of f.
func (e *Engine) Volume(f *front.Front) float64 {
	return e.hv(f.Points(), f.Dim())
}

// Exclusive returns the exclusive hypervolume of point p within f: the volume
// dominated by p and by no other point of f. The result is never negative;
// rounding below zero is clamped. f is left unchanged.
//
// Complexity: one limit set of Len()−1 points plus its volume.
func (e *Engine) Exclusive(f *front.Front, p int) float64 {
	var (
		pts = f.Points()
		n   = f.Dim()
		z   = f.Point(p)
		vol = Inclusive(z)
	)
	if len(pts) == 1 || vol == 0 {
		return vol
	}

	lim := e.limitSet(pts, p, z, n)
	vol -= e.hv(lim, n)
	e.pop()

	return max(vol, 0)
}

// hv is the WFG recursion on the first n objectives of ps. ps is sorted in
// place.
func (e *Engine) hv(ps []front.Point, n int) float64 {
	switch {
	case len(ps) == 0:
		return 0
	case n == 0:
		return 1
	case len(ps) == 1:
		return Inclusive(ps[0][:n])
	case n == 1:
		return maxFirst(ps)
	}

	sortWorsening(ps, n)
	if n == 2 {
		return hv2(ps)
	}

	var (
		vol float64
		i   int
	)
	for i = 0; i < len(ps); i++ {
		vol += ps[i][n-1] * e.exclPrefix(ps, i, n-1)
	}

	return vol
}

// exclPrefix returns the volume of ps[i] in n objectives not covered by any
// of ps[:i].
func (e *Engine) exclPrefix(ps []front.Point, i, n int) float64 {
	vol := Inclusive(ps[i][:n])
	if i == 0 || vol == 0 {
		return vol
	}

	lim := e.limitSet(ps[:i], -1, ps[i], n)
	vol -= e.hv(lim, n)
	e.pop()

	return vol
}

// limitSet pushes a scratch front holding every point of pts except index
// skip, bounded component-wise by z on objectives 0..n-1, with dominated and
// zero-volume rows removed. The caller must pop it.
func (e *Engine) limitSet(pts []front.Point, skip int, z front.Point, n int) []front.Point {
	var (
		s    = e.push(len(pts), n)
		rows = s.Points()
		cnt  int
		i, j int
	)
	for i = 0; i < len(pts); i++ {
		if i == skip {
			continue
		}
		for j = 0; j < n; j++ {
			rows[cnt][j] = front.Worse(pts[i][j], z[j])
		}
		cnt++
	}

	kept := e.prune(rows[:cnt], n)
	_ = s.Resize(kept, n) // shrinking within capacity cannot fail

	return s.Points()
}

// prune moves the non-dominated, non-empty rows to the front of rows and
// returns their count. Of several equal rows the first one is kept.
// Complexity: O(len(rows)²·n).
func (e *Engine) prune(rows []front.Point, n int) int {
	var (
		dead = e.dead[e.depth-1][:len(rows)]
		i, j int
		kept int
	)
	for i = range rows {
		dead[i] = Inclusive(rows[i]) == 0
	}
	for i = range rows {
		if dead[i] {
			continue
		}
		for j = range rows {
			if j == i || dead[j] {
				continue
			}
			if front.Dominates(rows[j], rows[i], n-1) &&
				(j < i || !front.Dominates(rows[i], rows[j], n-1)) {
				dead[i] = true

				break
			}
		}
	}
	for i = range rows {
		if !dead[i] {
			rows[kept], rows[i] = rows[i], rows[kept]
			kept++
		}
	}

	return kept
}

// push returns the scratch front for the next depth, shaped m×n.
func (e *Engine) push(m, n int) *front.Front {
	if e.depth == len(e.stack) {
		f, _ := front.New(0, 0)
		e.stack = append(e.stack, f)
		e.dead = append(e.dead, nil)
	}
	s := e.stack[e.depth]
	s.Reserve(max(m, e.maxM), max(n, e.maxN))
	_ = s.Resize(m, n) // fits after Reserve
	if cap(e.dead[e.depth]) < m {
		e.dead[e.depth] = make([]bool, max(m, e.maxM))
	}
	e.depth++

	return s
}

// pop releases the innermost scratch front.
func (e *Engine) pop() { e.depth-- }

// sortWorsening sorts ps by the first n objectives, worsening from the last.
func sortWorsening(ps []front.Point, n int) {
	slices.SortFunc(ps, func(p, q front.Point) int {
		return front.CompareWorsening(p[:n], q[:n])
	})
}

// hv2 sweeps a two-objective front already sorted worsening in objective 1.
func hv2(ps []front.Point) float64 {
	var (
		vol  = ps[0][0] * ps[0][1]
		maxX = ps[0][0]
		i    int
	)
	for i = 1; i < len(ps); i++ {
		if front.Beats(ps[i][0], maxX) {
			vol += (ps[i][0] - maxX) * ps[i][1]
			maxX = ps[i][0]
		}
	}

	return vol
}

// maxFirst returns the largest first objective in ps.
func maxFirst(ps []front.Point) float64 {
	best := ps[0][0]
	for _, p := range ps[1:] {
		if front.Beats(p[0], best) {
			best = p[0]
		}
	}

	return best
}
