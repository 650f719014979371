// Package backtrack performs exact search over a Grid when propagation
// alone cannot close it: on entry it drives the grid to a fixed point with
// the Propagator, then narrows remaining cells with naked- and
// hidden-single sweeps before branching on the most-constrained cell by an
// MRV-plus score. Branches are pruned with the contradiction detector;
// depth and node-count caps bound worst-case runtime, and a visited-state
// set (keyed by the grid's serialized form) skips states already explored.
package backtrack
