// Package propagate drives line solving to a fixed point over an entire
// grid, and offers a concurrent variant dispatching independent line jobs
// to a worker pool.
//
// Steps (Propagator.Run):
//  1. For every row, then every column (one pass): invoke the line solver,
//     plus cross-analysis and advanced heuristics if configured.
//  2. Apply every returned deduction to the grid and record it.
//  3. Repeat until a pass produces zero deductions, or the pass cap (1000)
//     is reached — ErrIterationLimit in that case, with progress kept.
//
// Complexity: each pass is O(lines * line-solving cost); total passes are
// bounded by the grid's total cell count in practice, never by the cap.
package propagate
