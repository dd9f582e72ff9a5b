package bottomk

import (
	"fmt"

	"github.com/katalvlaran/iwfg/front"
	"github.com/katalvlaran/iwfg/wfg"
)

// Candidate tracks the lazily evaluated exclusive contribution of one point.
//
// Value is a lower bound that only grows; it equals the exact exclusive
// contribution once every slab has been resolved (Certified).
type Candidate struct {
	id     int
	point  front.Point // own copy, reduced by one objective
	slabs  []Slab      // heaviest first
	value  float64
	cursor int // slabs[:cursor] are resolved
}

// NewCandidate decomposes z against the other points of its front and
// returns the candidate with identity id and no slab resolved. rest must be
// in worsening order; neither z nor rest is modified or retained.
func NewCandidate(id int, z front.Point, rest []front.Point) *Candidate {
	return &Candidate{
		id:    id,
		point: z.Clone().Reduce(),
		slabs: Decompose(z, rest),
	}
}

// ID returns the identity given to NewCandidate.
func (c *Candidate) ID() int { return c.id }

// Value returns the contribution accumulated so far.
func (c *Candidate) Value() float64 { return c.value }

// Len returns the number of slabs.
func (c *Candidate) Len() int { return len(c.slabs) }

// Pending returns the number of unresolved slabs.
func (c *Candidate) Pending() int { return len(c.slabs) - c.cursor }

// Certified reports whether Value is exact. A candidate without slabs is
// certified at zero from the start.
func (c *Candidate) Certified() bool { return c.cursor == len(c.slabs) }

// next returns the slab ResolveNext will evaluate. It panics on a certified
// candidate.
func (c *Candidate) next() Slab { return c.slabs[c.cursor] }

// ResolveNext evaluates the heaviest unresolved slab in ws and adds its
// weighted exclusive volume to the running value, which it returns.
//
// The scratch contents of ws are undefined afterwards. A slab too large for
// ws fails with ErrInternal wrapping front.ErrCapacityExceeded and leaves the
// candidate unchanged.
func (c *Candidate) ResolveNext(ws *Workspace) (float64, error) {
	if c.Certified() {
		return c.value, fmt.Errorf("%w: candidate %d", ErrNoPendingSlab, c.id)
	}

	var (
		s    = c.slabs[c.cursor]
		size = s.Len()
		dim  = len(c.point)
		vol  float64
		i    int
	)
	if err := ws.scratch.Resize(size+1, dim); err != nil {
		return c.value, fmt.Errorf("%w: candidate %d slab %d: %w", ErrInternal, c.id, c.cursor, err)
	}

	// 1) slab points first, the candidate last.
	for i = 0; i < size; i++ {
		copy(ws.scratch.Point(i), s.points[i])
	}
	copy(ws.scratch.Point(size), c.point)

	// 2) an empty slab leaves the candidate's whole box exclusive.
	if size == 0 {
		vol = wfg.Inclusive(c.point)
	} else {
		vol = ws.engine.Exclusive(ws.scratch, size)
	}

	c.value += s.Weight * vol
	c.slabs[c.cursor].points = nil
	c.cursor++

	return c.value, nil
}
