// Package iwfg ranks the points of a Pareto front by how much hypervolume
// each one adds, and finds the least contributing points without computing
// every contribution in full.
//
// Layout:
//
//	front/     Point and Front: flat row-major storage, dominance, sort order
//	wfg/       exact hypervolume engine (inclusive, exclusive, total)
//	pq/        indexed min-heap with increase-key
//	bottomk/   slab decomposition, lazy evaluation, bottom-k selection, batches
//	metrics/   Prometheus recorder for selections
//	adapter/   gonum matrices, optimisation sense and reference point
//	frontio/   CSV and YAML readers
//	config/    YAML and environment configuration of the command
//	cmd/iwfg/  the command line tool
//
// Quick start:
//
//	f, _ := front.FromRows([][]float64{{0.29, 2.29}, {1.12, 0.88}, {0.74, 1.71}})
//	idx, err := bottomk.BottomK(f, 1)
package iwfg
