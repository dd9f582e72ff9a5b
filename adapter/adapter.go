// SPDX-License-Identifier: MIT

// Package adapter connects matrix-shaped objective data to the bottom-k
// selection: rows are points, columns are objectives, and the optimisation
// sense and reference point are normalised away before the core sees them.
//
// The core works in maximisation with the reference point at the origin. A
// matrix y in Minimize sense with reference r becomes r − y; in Maximize
// sense it becomes y − r. Coordinates that fall on the wrong side of the
// reference are clamped to zero, i.e. they add no volume.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/iwfg/bottomk"
	"github.com/katalvlaran/iwfg/front"
)

// Sentinel errors returned by the adapter.
var (
	// ErrEmpty indicates a matrix without rows.
	ErrEmpty = errors.New("adapter: no points in the front")

	// ErrNoObjectives indicates a matrix without columns.
	ErrNoObjectives = errors.New("adapter: no objectives for points in the front")

	// ErrBadReference indicates a reference point of the wrong length or
	// with non-finite values.
	ErrBadReference = errors.New("adapter: invalid reference point")

	// ErrUnknownSense indicates an unrecognised sense name.
	ErrUnknownSense = errors.New("adapter: unknown optimisation sense")
)

// Sense is the direction in which objectives improve.
type Sense int

const (
	// Maximize treats larger objective values as better.
	Maximize Sense = iota

	// Minimize treats smaller objective values as better.
	Minimize
)

// String returns "max" or "min".
func (s Sense) String() string {
	if s == Minimize {
		return "min"
	}

	return "max"
}

// ParseSense accepts "max", "maximize", "min" and "minimize", in any case.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	}

	return Maximize, fmt.Errorf("%w: %q", ErrUnknownSense, s)
}

// Options configures the conversion and the call into the core.
type Options struct {
	Sense     Sense
	Reference []float64 // nil means the origin
	OneBased  bool      // report identities from 1, as row numbers
	Core      []bottomk.Option
}

// Option represents a functional option for the adapter.
type Option func(*Options)

// WithSense sets the optimisation sense. Default Maximize.
func WithSense(s Sense) Option {
	return func(o *Options) {
		o.Sense = s
	}
}

// WithReference sets the reference point; it must have one value per
// objective. The slice is copied.
func WithReference(ref []float64) Option {
	return func(o *Options) {
		o.Reference = append([]float64(nil), ref...)
	}
}

// WithOneBased reports identities starting at 1.
func WithOneBased() Option {
	return func(o *Options) {
		o.OneBased = true
	}
}

// WithCoreOptions forwards options to the bottomk package.
func WithCoreOptions(opts ...bottomk.Option) Option {
	return func(o *Options) {
		o.Core = append(o.Core, opts...)
	}
}

// DefaultOptions returns Maximize, the origin as reference, 0-based
// identities and no core options.
func DefaultOptions() Options {
	return Options{Sense: Maximize}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ToFront converts y to a front in maximisation form relative to the
// configured reference point.
func ToFront(y mat.Matrix, opts ...Option) (*front.Front, error) {
	return toFront(y, buildOptions(opts))
}

func toFront(y mat.Matrix, o Options) (*front.Front, error) {
	if y == nil {
		return nil, ErrEmpty
	}
	m, n := y.Dims()
	if m == 0 {
		return nil, ErrEmpty
	}
	if n == 0 {
		return nil, ErrNoObjectives
	}

	ref := o.Reference
	if ref == nil {
		ref = make([]float64, n)
	}
	if len(ref) != n {
		return nil, fmt.Errorf("%w: %d values for %d objectives", ErrBadReference, len(ref), n)
	}
	if !front.Point(ref).IsFinite() {
		return nil, fmt.Errorf("%w: non-finite value", ErrBadReference)
	}

	f, err := front.New(m, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m; i++ {
		p := f.Point(i)
		for j = 0; j < n; j++ {
			v := y.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d column %d", front.ErrNaNInf, i, j)
			}
			if o.Sense == Minimize {
				v = ref[j] - v
			} else {
				v -= ref[j]
			}
			p[j] = max(v, 0)
		}
	}

	return f, nil
}

// BottomK returns the identities of the min(k, rows) rows of y with the
// smallest exclusive hypervolume contribution, ascending.
func BottomK(y mat.Matrix, k int, opts ...Option) ([]int, error) {
	o := buildOptions(opts)
	f, err := toFront(y, o)
	if err != nil {
		return nil, err
	}
	idx, err := bottomk.BottomK(f, k, o.Core...)
	if err != nil {
		return nil, err
	}

	return shift(idx, o), nil
}

// BottomKAll runs BottomK over several matrices with a shared k, saturated
// per matrix, concurrently as configured by bottomk.WithWorkers.
func BottomKAll(ctx context.Context, ys []mat.Matrix, k int, opts ...Option) ([][]int, error) {
	o := buildOptions(opts)
	fronts := make([]*front.Front, len(ys))
	for i, y := range ys {
		f, err := toFront(y, o)
		if err != nil {
			return nil, fmt.Errorf("front %d: %w", i, err)
		}
		fronts[i] = f
	}

	results, err := bottomk.SelectAll(ctx, fronts, k, o.Core...)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(results))
	for i, r := range results {
		out[i] = shift(r.Indices, o)
	}

	return out, nil
}

// Contributions returns the exact exclusive contribution of every row of y.
func Contributions(y mat.Matrix, opts ...Option) ([]float64, error) {
	o := buildOptions(opts)
	f, err := toFront(y, o)
	if err != nil {
		return nil, err
	}

	return bottomk.Contributions(f, o.Core...)
}

func shift(idx []int, o Options) []int {
	if o.OneBased {
		for i := range idx {
			idx[i]++
		}
	}

	return idx
}
