// Package crossanalysis derives cheap, non-enumerative deductions from a
// line's constraint: overlap (positions forced Filled by every block's
// movement envelope) and edge forcing (a Filled cell near a boundary
// forces the adjacent block to the edge).
//
// What:
//
//   - Analyzer.Analyze scans every row and every column of a Grid, applying
//     overlap and edge forcing, and returns the deduplicated, sorted union.
//
// Complexity:
//
//   - O(L*K) per line, where L is line length and K is block count; no
//     enumeration of completions is performed.
package crossanalysis
