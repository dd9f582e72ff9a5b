// Package wfg computes exact hypervolumes of fronts with the WFG algorithm
// (While, Bradstreet, Barone: "A Fast Way of Calculating Exact Hypervolumes").
//
// Every objective is maximised and the reference point is the origin, so the
// hypervolume of a front is the Lebesgue measure of the union of the boxes
// [0, p] over its points.
//
// Primitives:
//   - Inclusive(p): volume of the single box [0, p].
//   - Engine.Volume(f): volume of the union over all points of f.
//   - Engine.Exclusive(f, i): volume only point i covers, Inclusive(pᵢ)
//     minus the volume of the other points bounded by pᵢ.
//
// How it works:
//
//	Points are sorted worsening in the last objective. The volume is then
//	the sum, over points, of the point's last objective times its exclusive
//	volume in n−1 dimensions relative to the points sorted before it. Each
//	exclusive volume recurses on the "limit set": the earlier points bounded
//	component-wise by the current one, with dominated and zero-volume points
//	removed. Two-dimensional fronts use a linear sweep.
//
// Memory:
//
//	An Engine owns one scratch front per recursion depth (at most n). They
//	are sized once and only grow, so an Engine reused across calls stops
//	allocating after the largest front has been seen. An Engine is not safe
//	for concurrent use.
package wfg
