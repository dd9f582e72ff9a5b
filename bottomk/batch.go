package bottomk

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/iwfg/front"
)

// SelectAll runs Select on every front with the same k, saturated per front,
// and returns the results in input order.
//
// Up to WithWorkers fronts are evaluated at once. Each in-flight front owns
// one of a fixed set of workspaces, all sized once for the largest front in
// the batch; a WithWorkspace option is ignored. The context is checked
// before each front starts: a single front always runs to completion. The
// first error cancels the fronts not yet started and is returned wrapped
// with the index of its front.
func SelectAll(ctx context.Context, fronts []*front.Front, k int, opts ...Option) ([]Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	o := buildOptions(opts)

	var maxM, maxN int
	for _, f := range fronts {
		if f == nil {
			continue
		}
		maxM = max(maxM, f.Len())
		maxN = max(maxN, f.Dim()-1)
	}

	workers := min(o.Workers, max(len(fronts), 1))
	pool := make(chan *Workspace, workers)
	for range workers {
		pool <- NewWorkspace(maxM, maxN)
	}

	var (
		out     = make([]Result, len(fronts))
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(workers)
	for i, f := range fronts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ws := <-pool
			defer func() { pool <- ws }()

			fo := o
			fo.Workspace = ws
			res, err := observe(f, k, fo)
			if err != nil {
				return fmt.Errorf("front %d: %w", i, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
