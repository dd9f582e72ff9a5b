// Package front provides the point and front primitives shared by the
// hypervolume engine and the bottom-k selector.
//
// What is a front?
//
//	A finite set of points in an n-dimensional objective space. Every
//	objective is maximised and the implicit reference point is the origin,
//	so a point p dominates the box [0, p₀] × … × [0, pₙ₋₁].
//
// Key types:
//   - Point: an ordered tuple of objectives ([]float64). Dimensions only
//     ever shrink: Reduce drops the last objective.
//   - Front: a reusable, row-major buffer of points whose logical size
//     (Len, Dim) is distinct from its allocated capacity (Cap). Capacity is
//     grow-only (Reserve); logical resizing is checked (Resize) and fails with
//     ErrCapacityExceeded instead of writing past the allocation.
//
// Comparisons:
//   - Beats(x, y) is the strict objective comparison x > y.
//   - Dominates(p, q, k) is the one-way test "q beats p nowhere on 0..k".
//     It is weak: equal points dominate each other.
//   - CompareWorsening / SortWorsening give the global sort order used by the
//     slab sweep: descending, lexicographic from the last objective backward.
//
// Concurrency:
//
//	A Front is not safe for concurrent mutation. A buffer reused across
//	computations must be owned by exactly one of them at a time.
package front
