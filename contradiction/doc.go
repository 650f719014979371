// Package contradiction decides whether a grid state remains feasible
// under its constraints, and offers a hypothesis-testing helper used by
// the backtracker and by naked/hidden-single techniques.
//
// What:
//
//   - Detector.IsValid runs cheap per-line checks (run count, leftmost run
//     size, total Filled count, usable space) before falling back to a
//     per-line feasibility probe through a linesolve.Solver.
//   - Detector.TestHypothesis clones the grid, applies one hypothetical
//     cell assignment, and reports whether the result is still valid.
//
// IsValid never returns a false positive: if it reports false, no
// completion exists. A true result does not guarantee a completion exists
// — it may simply not have found the contradiction yet.
package contradiction
