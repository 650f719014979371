// Package linesolve implements single-line constraint solving: given the
// current state of one row or column and its run-length constraint, derive
// every cell whose value is identical across all valid completions.
//
// What:
//
//   - Solver enumerates every valid placement of a line's blocks via
//     recursive backtracking with pruning, counting how many completions
//     leave each position Filled or Crossed.
//   - A position is deduced when one count equals the total completion
//     count and the line currently holds Empty there.
//
// Complexity:
//
//   - Worst case exponential in line length; the start-position pruning in
//     lineEngine.enumerate keeps realistic puzzle sizes tractable.
//
// Caching:
//
//   - Solver memoizes (line signature, constraint) -> per-position counts
//     in a process-local map. Call Reset between unrelated puzzles.
package linesolve
