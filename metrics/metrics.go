// Package metrics exports selection statistics to Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/iwfg/bottomk"
)

const subsystem = "bottomk"

// Result label values of selections_total and select_duration_seconds.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultInternal = "internal"
)

// Prometheus is a bottomk.Recorder backed by Prometheus collectors. It is
// safe for concurrent use.
type Prometheus struct {
	selections *prometheus.CounterVec
	slabs      prometheus.Counter
	resolved   prometheus.Counter
	iterations prometheus.Counter
	duration   *prometheus.HistogramVec
}

var _ bottomk.Recorder = (*Prometheus)(nil)

// NewPrometheus creates the selection collectors under namespace and
// registers them with reg. It panics if a collector is already registered,
// like prometheus.MustRegister.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	p := &Prometheus{
		selections: mustRegisterCounterVec(reg, namespace, "selections_total",
			"Number of bottom-k selections by result.", "result"),
		slabs: mustRegisterCounter(reg, namespace, "slabs_total",
			"Slabs produced by decomposition."),
		resolved: mustRegisterCounter(reg, namespace, "slabs_resolved_total",
			"Slabs evaluated with an exclusive hypervolume."),
		iterations: mustRegisterCounter(reg, namespace, "heap_iterations_total",
			"Queue inspections in the selection loop."),
		duration: mustRegisterHistogramVec(reg, namespace, "select_duration_seconds",
			"Wall time of one selection.", prometheus.ExponentialBuckets(1e-5, 4, 12), "result"),
	}

	return p
}

// ObserveSelect implements bottomk.Recorder.
func (p *Prometheus) ObserveSelect(s bottomk.Stats, elapsed time.Duration, err error) {
	result := classify(err)
	p.selections.WithLabelValues(result).Inc()
	p.duration.WithLabelValues(result).Observe(elapsed.Seconds())
	p.slabs.Add(float64(s.Slabs))
	p.resolved.Add(float64(s.Resolved))
	p.iterations.Add(float64(s.Iterations))
}

func classify(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, bottomk.ErrInternal):
		return ResultInternal
	default:
		return ResultInvalid
	}
}

func mustRegisterCounter(reg prometheus.Registerer, namespace, name, help string) prometheus.Counter {
	m := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
	reg.MustRegister(m)
	return m
}

func mustRegisterCounterVec(reg prometheus.Registerer, namespace, name, help string, labelNames ...string) *prometheus.CounterVec {
	m := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
	reg.MustRegister(m)
	return m
}

func mustRegisterHistogramVec(reg prometheus.Registerer, namespace, name, help string, buckets []float64, labelNames ...string) *prometheus.HistogramVec {
	m := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labelNames)
	reg.MustRegister(m)
	return m
}
