// Package bottomk finds the points of a Pareto front that contribute least
// to its hypervolume, without computing every contribution exactly.
//
// Conventions: objectives are maximised and measured from the origin, so
// every coordinate must be non-negative. The exclusive contribution of a
// point is the volume dominated by it and by no other point of the front.
//
// Algorithm:
//
//  1. Every point is decomposed once into slabs along its last objective
//     (Decompose). Each slab is an (n−1)-objective sub-problem with a
//     thickness; the contribution is Σ thickness × exclusive volume of the
//     reduced point inside the slab.
//  2. Slabs are resolved heaviest first (Candidate.ResolveNext), so a
//     candidate's running value is a lower bound that only grows.
//  3. A min-queue over the lower bounds (package pq) always works on the
//     current minimum: a certified minimum is emitted, any other is
//     tightened by one slab and re-queued.
//
// Points far from the bottom of the ranking are typically left with most of
// their slabs unresolved; Stats reports how much work was skipped.
//
// Complexity:
//
//	– Decomposition: O(m²·n) per point.
//	– Each resolution: one exclusive hypervolume in n−1 objectives.
//	– Queue: O(log m) per step.
//
// Concurrency: a call is single-threaded and synchronous. A Workspace may be
// reused across calls but not shared by concurrent ones; SelectAll gives
// each of its workers its own.
//
// Example:
//
//	f, _ := front.FromRows(rows)
//	idx, err := bottomk.BottomK(f, 2)
package bottomk
