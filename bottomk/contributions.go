package bottomk

import (
	"time"

	"github.com/katalvlaran/iwfg/front"
)

// Contributions returns the exact exclusive hypervolume contribution of
// every point of f, in input order. It resolves every slab of every point,
// so it costs as much as Select with k = f.Len() in the worst case and never
// benefits from the lazy queue.
//
// Errors are those of Select, except that there is no k to validate.
func Contributions(f *front.Front, opts ...Option) ([]float64, error) {
	o := buildOptions(opts)
	start := time.Now()

	out, stats, err := contributions(f, o)
	o.Recorder.ObserveSelect(stats, time.Since(start), err)

	return out, err
}

func contributions(f *front.Front, o Options) ([]float64, Stats, error) {
	if _, err := validate(f, 1); err != nil {
		return nil, Stats{}, err
	}
	r := newRunner(f, f.Len(), o)
	if f.Dim() == 1 {
		return lineContributions(f.Points()), r.stats, nil
	}

	r.candidates()
	out := make([]float64, len(r.cands))
	for _, c := range r.cands {
		for !c.Certified() {
			if err := r.resolve(c); err != nil {
				return nil, r.stats, err
			}
		}
		out[c.id] = c.value
	}

	return out, r.stats, nil
}
