// SPDX-License-Identifier: MIT

package bottomk

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors returned by the selection routines.
var (
	// ErrNilFront indicates that a nil *front.Front was passed.
	ErrNilFront = errors.New("bottomk: front is nil")

	// ErrEmptyFront indicates a front without points.
	ErrEmptyFront = errors.New("bottomk: front has no points")

	// ErrBadK indicates a requested count below one.
	ErrBadK = errors.New("bottomk: k must be at least 1")

	// ErrNegativeObjective indicates an objective below the reference point.
	// Objectives are measured from the origin and must be non-negative.
	ErrNegativeObjective = errors.New("bottomk: objective below the reference point")

	// ErrInternal wraps failures that valid input can only trigger through
	// misuse of a Workspace, such as one too small for the front.
	ErrInternal = errors.New("bottomk: internal error")

	// ErrHeapExhausted indicates that the queue ran dry before k points were
	// certified. It is always reported wrapped in ErrInternal.
	ErrHeapExhausted = errors.New("bottomk: queue exhausted before k results")

	// ErrNoPendingSlab is returned by ResolveNext on a certified candidate.
	ErrNoPendingSlab = errors.New("bottomk: candidate has no pending slab")
)

// Stats summarises the work done by one selection.
//
// Resolved < Slabs measures the sub-problems the lazy queue never had to
// evaluate.
type Stats struct {
	Points     int // points in the front
	Objectives int // objectives per point
	K          int // number of results after saturation
	Slabs      int // slabs produced by decomposition, over all candidates
	Resolved   int // slabs actually evaluated
	Iterations int // queue inspections in the main loop
}

// Result is the outcome of a successful selection.
type Result struct {
	// Indices holds the 0-based identities of the k least contributors,
	// ascending by exclusive contribution.
	Indices []int

	// Contributions[i] is the exact exclusive contribution of Indices[i].
	Contributions []float64

	Stats Stats
}

// Recorder observes completed selections. Implementations must be safe for
// concurrent use when passed to SelectAll.
type Recorder interface {
	ObserveSelect(stats Stats, elapsed time.Duration, err error)
}

// NoopRecorder discards every observation.
type NoopRecorder struct{}

// ObserveSelect implements Recorder.
func (NoopRecorder) ObserveSelect(Stats, time.Duration, error) {}

// Options configures a selection.
//
// Logger    – receives debug traces of decomposition and slab resolution.
// Workspace – reusable scratch; when nil, one sized for the front is made.
//
//	A supplied Workspace is never grown by Select: a front that does not
//	fit yields ErrInternal.
//
// Recorder  – observes every Select call (Stats, latency, error).
// Workers   – fronts evaluated concurrently by SelectAll. Default 1.
type Options struct {
	Logger    *slog.Logger
	Workspace *Workspace
	Recorder  Recorder
	Workers   int
}

// Option represents a functional option for configuring a selection.
type Option func(*Options)

// WithLogger routes debug traces to l. A nil logger restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger
		}
		o.Logger = l
	}
}

// WithWorkspace makes Select evaluate slabs in ws instead of allocating
// scratch per call. ws must not be shared by concurrent calls.
func WithWorkspace(ws *Workspace) Option {
	return func(o *Options) {
		o.Workspace = ws
	}
}

// WithRecorder installs r as the observer of every selection.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r == nil {
			r = NoopRecorder{}
		}
		o.Recorder = r
	}
}

// WithWorkers bounds the number of fronts SelectAll evaluates at once.
// It panics if w < 1.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			panic("bottomk: WithWorkers requires w >= 1")
		}
		o.Workers = w
	}
}

var discardLogger = slog.New(slog.DiscardHandler)

// DefaultOptions returns the defaults: discard logger, per-call workspace,
// no-op recorder, one worker.
func DefaultOptions() Options {
	return Options{
		Logger:   discardLogger,
		Recorder: NoopRecorder{},
		Workers:  1,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
