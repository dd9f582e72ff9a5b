// SPDX-License-Identifier: MIT

package bottomk

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/iwfg/front"
	"github.com/katalvlaran/iwfg/pq"
)

// BottomK returns the 0-based identities of the min(k, f.Len()) points of f
// with the smallest exclusive hypervolume contribution, ascending. Ties are
// broken arbitrarily but deterministically. f is not modified.
//
// See Select for the errors returned.
func BottomK(f *front.Front, k int, opts ...Option) ([]int, error) {
	res, err := Select(f, k, opts...)
	if err != nil {
		return nil, err
	}

	return res.Indices, nil
}

// Select finds the k least contributors of f together with their exact
// contributions.
//
// Every point is decomposed into slabs once, and its first slab evaluated
// to seed a lower bound. A min-queue on those bounds then repeatedly takes
// the smallest: a certified bound is emitted, any other is tightened by one
// more slab and re-queued. Points that never reach the top of the queue are
// never evaluated in full.
//
// Errors:
//   - ErrNilFront, ErrEmptyFront, ErrBadK for unusable arguments;
//   - front.ErrBadShape for a front without objectives, front.ErrNaNInf or
//     ErrNegativeObjective for objective values the origin cannot bound;
//   - ErrInternal (wrapping front.ErrCapacityExceeded) when the supplied
//     Workspace is too small for f.
//
// k above f.Len() is saturated. No partial result is returned on error.
func Select(f *front.Front, k int, opts ...Option) (Result, error) {
	return observe(f, k, buildOptions(opts))
}

// observe runs one selection and reports it to the recorder.
func observe(f *front.Front, k int, o Options) (Result, error) {
	start := time.Now()
	res, err := selectFront(f, k, o)
	o.Recorder.ObserveSelect(res.Stats, time.Since(start), err)

	return res, err
}

func selectFront(f *front.Front, k int, o Options) (Result, error) {
	k, err := validate(f, k)
	if err != nil {
		return Result{}, err
	}
	r := newRunner(f, k, o)
	if f.Dim() == 1 {
		return r.selectLine(), nil
	}
	if err = r.init(); err != nil {
		return Result{Stats: r.stats}, err
	}

	return r.process()
}

// validate checks f and returns k saturated to f.Len().
func validate(f *front.Front, k int) (int, error) {
	if f == nil {
		return 0, ErrNilFront
	}
	if f.Len() == 0 {
		return 0, ErrEmptyFront
	}
	if k < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	if f.Dim() == 0 {
		return 0, fmt.Errorf("%w: zero objectives", front.ErrBadShape)
	}

	var i, j int
	for i = 0; i < f.Len(); i++ {
		p := f.Point(i)
		if !p.IsFinite() {
			return 0, fmt.Errorf("%w: point %d", front.ErrNaNInf, i)
		}
		for j = range p {
			if p[j] < 0 {
				return 0, fmt.Errorf("%w: point %d objective %d is %g", ErrNegativeObjective, i, j, p[j])
			}
		}
	}

	return min(k, f.Len()), nil
}

// runner holds the per-call state of one selection.
type runner struct {
	f     *front.Front
	k     int
	ws    *Workspace
	log   *slog.Logger
	cands []*Candidate // indexed by identity
	queue *pq.Queue
	stats Stats
}

func newRunner(f *front.Front, k int, o Options) *runner {
	ws := o.Workspace
	if ws == nil {
		ws = NewWorkspace(f.Len(), f.Dim()-1)
	}

	return &runner{
		f:   f,
		k:   k,
		ws:  ws,
		log: o.Logger,
		stats: Stats{
			Points:     f.Len(),
			Objectives: f.Dim(),
			K:          k,
		},
	}
}

// candidates decomposes every point against the others, in worsening order.
func (r *runner) candidates() {
	var (
		m     = r.f.Len()
		pts   = r.f.Points()
		order = make([]int, m)
		rest  = make([]front.Point, 0, m)
		i     int
	)
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return front.CompareWorsening(pts[a], pts[b])
	})
	sorted := make([]front.Point, m)
	for i = range order {
		sorted[i] = pts[order[i]]
	}

	r.cands = make([]*Candidate, m)
	for i = range order {
		rest = append(rest[:0], sorted[:i]...)
		rest = append(rest, sorted[i+1:]...)

		c := NewCandidate(order[i], sorted[i], rest)
		r.cands[c.id] = c
		r.stats.Slabs += c.Len()
		r.log.Debug("decomposed", "candidate", c.id, "slabs", c.Len())
	}
}

// resolve evaluates the next slab of c.
func (r *runner) resolve(c *Candidate) error {
	s := c.next()
	before := c.value
	if _, err := c.ResolveNext(r.ws); err != nil {
		return err
	}
	r.stats.Resolved++
	r.log.Debug("resolved slab",
		"candidate", c.id,
		"weight", s.Weight,
		"size", s.Len(),
		"gain", c.value-before,
		"value", c.value,
		"pending", c.Pending())

	return nil
}

// init builds the candidates, seeds each with its heaviest slab and queues
// them by their lower bound.
func (r *runner) init() error {
	r.candidates()
	r.queue = pq.New(len(r.cands))

	for _, c := range r.cands {
		if !c.Certified() {
			if err := r.resolve(c); err != nil {
				return err
			}
		}
		if err := r.queue.Push(c.id, c.value); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	return nil
}

// process pops certified minima until k are emitted, tightening any
// uncertified minimum by one slab.
func (r *runner) process() (Result, error) {
	res := Result{
		Indices:       make([]int, 0, r.k),
		Contributions: make([]float64, 0, r.k),
	}
	for len(res.Indices) < r.k {
		id, _, ok := r.queue.Peek()
		if !ok {
			return Result{Stats: r.stats}, fmt.Errorf("%w: %w: %d of %d emitted",
				ErrInternal, ErrHeapExhausted, len(res.Indices), r.k)
		}
		r.stats.Iterations++

		c := r.cands[id]
		if c.Certified() {
			r.queue.Pop()
			res.Indices = append(res.Indices, id)
			res.Contributions = append(res.Contributions, c.value)
			r.log.Debug("certified", "candidate", id, "contribution", c.value, "rank", len(res.Indices))

			continue
		}

		if err := r.resolve(c); err != nil {
			return Result{Stats: r.stats}, err
		}
		if err := r.queue.IncreaseKey(id, c.value); err != nil {
			return Result{Stats: r.stats}, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}
	res.Stats = r.stats

	return res, nil
}

// selectLine handles single-objective fronts. Only the unique maximum owns
// any exclusive length, so ascending value order is ascending contribution
// order.
func (r *runner) selectLine() Result {
	var (
		m     = r.f.Len()
		pts   = r.f.Points()
		order = make([]int, m)
		i     int
	)
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(pts[a][0], pts[b][0])
	})

	contrib := lineContributions(pts)
	res := Result{
		Indices:       order[:r.k],
		Contributions: make([]float64, r.k),
		Stats:         r.stats,
	}
	for i = 0; i < r.k; i++ {
		res.Contributions[i] = contrib[order[i]]
	}

	return res
}

// lineContributions returns the exclusive contributions of single-objective
// points: the gap between the unique maximum and the runner-up, zero for
// everything else.
func lineContributions(pts []front.Point) []float64 {
	var (
		out         = make([]float64, len(pts))
		best        = -1
		first, next float64
	)
	for i, p := range pts {
		switch {
		case best < 0 || front.Beats(p[0], first):
			next, first, best = first, p[0], i
		case front.Beats(p[0], next):
			next = p[0]
		}
	}
	out[best] = first - next

	return out
}
