// SPDX-License-Identifier: MIT

package front

import "fmt"

// Front is a reusable collection of points stored row-major in one flat
// slice. The logical shape (Len × Dim) never exceeds the allocated capacity
// (Cap); capacity only grows.
//
// Every point header is a three-index view into the backing slice, so a
// header can be resliced up to the capacity dimension without touching its
// neighbour row. Headers may be permuted with Swap; the rows they point at
// stay fixed.
type Front struct {
	points []Point   // len == capM; points[i] views one row of data
	data   []float64 // flat backing storage, len == capM*capN
	m, n   int       // logical number of points and objectives
	capM   int       // allocated number of points
	capN   int       // allocated number of objectives
}

// New creates a front with m points of n objectives, all zero, and exactly
// that much capacity.
// Complexity: O(m·n) time and memory.
func New(m, n int) (*Front, error) {
	if m < 0 || n < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, m, n)
	}
	f := &Front{}
	f.Reserve(m, n)
	f.m, f.n = m, n
	f.reslice()

	return f, nil
}

// FromRows builds a front from a slice of rows, one point per row. Every row
// must have the same non-zero length and hold finite values only.
func FromRows(rows [][]float64) (*Front, error) {
	var (
		m = len(rows)
		n int
	)
	if m > 0 {
		n = len(rows[0])
		if n == 0 {
			return nil, fmt.Errorf("%w: zero objectives", ErrBadShape)
		}
	}

	f, err := New(m, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < m; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d objectives, want %d", ErrBadShape, i, len(rows[i]), n)
		}
		if !Point(rows[i]).IsFinite() {
			return nil, fmt.Errorf("%w: row %d", ErrNaNInf, i)
		}
		copy(f.points[i], rows[i])
	}

	return f, nil
}

// Len returns the logical number of points.
func (f *Front) Len() int { return f.m }

// Dim returns the logical number of objectives.
func (f *Front) Dim() int { return f.n }

// Cap returns the allocated number of points and objectives.
func (f *Front) Cap() (points, objectives int) { return f.capM, f.capN }

// Point returns the i-th point as a view into the front. It panics when i is
// outside [0, Len), like a slice index.
func (f *Front) Point(i int) Point {
	if i < 0 || i >= f.m {
		panic(fmt.Sprintf("front: Point(%d) with Len()=%d", i, f.m))
	}

	return f.points[i]
}

// Points returns the logical points as views into the front. The returned
// slice shares headers with f; reordering it reorders f.
func (f *Front) Points() []Point { return f.points[:f.m] }

// Set copies the first Dim() objectives of p into point i.
func (f *Front) Set(i int, p Point) error {
	if i < 0 || i >= f.m {
		return fmt.Errorf("%w: Set(%d) with Len()=%d", ErrOutOfRange, i, f.m)
	}
	if len(p) < f.n {
		return fmt.Errorf("%w: point has %d objectives, want %d", ErrBadShape, len(p), f.n)
	}
	copy(f.points[i], p[:f.n])

	return nil
}

// Swap exchanges the headers of points i and j.
func (f *Front) Swap(i, j int) { f.points[i], f.points[j] = f.points[j], f.points[i] }

// Reserve grows the capacity to at least m points of n objectives. It never
// shrinks, and the logical content survives a reallocation.
// Complexity: O(capM·capN) when it reallocates, O(1) otherwise.
func (f *Front) Reserve(m, n int) {
	if m <= f.capM && n <= f.capN {
		return
	}
	newM, newN := max(m, f.capM), max(n, f.capN)
	data := make([]float64, newM*newN)

	// Copy logical rows in header order so that a permuted front keeps its
	// visible order after the move.
	var i int
	for i = 0; i < f.m; i++ {
		copy(data[i*newN:], f.points[i][:f.n])
	}

	f.data = data
	f.capM, f.capN = newM, newN
	f.points = make([]Point, newM)
	for i = 0; i < newM; i++ {
		f.points[i] = f.data[i*newN : i*newN+f.n : (i+1)*newN]
	}
}

// Resize sets the logical shape to m points of n objectives. It fails with
// ErrCapacityExceeded, leaving f untouched, when the shape does not fit the
// allocated capacity. Point contents are not cleared.
// Complexity: O(capM).
func (f *Front) Resize(m, n int) error {
	if m < 0 || n < 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadShape, m, n)
	}
	if m > f.capM || n > f.capN {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrCapacityExceeded, m, n, f.capM, f.capN)
	}
	f.m, f.n = m, n
	f.reslice()

	return nil
}

// Clone returns a deep copy of the logical content of f with exactly that
// much capacity.
func (f *Front) Clone() *Front {
	out, _ := New(f.m, f.n)
	var i int
	for i = 0; i < f.m; i++ {
		copy(out.points[i], f.points[i])
	}

	return out
}

// reslice sets every header to the current logical dimension.
func (f *Front) reslice() {
	var i int
	for i = range f.points {
		f.points[i] = f.points[i][:f.n]
	}
}
