// Package constraints defines the per-line run-length constraints of a
// nonogram: the ordered block lengths for every row and every column.
//
// What:
//
//   - Constraints holds Rows and Columns, each a slice of blocks (one []int
//     per line) giving the lengths of consecutive Filled runs in order.
//   - New validates dimensions against width/height and checks that every
//     line's minimum required length fits within the line.
//
// Invariants:
//
//   - len(Rows) == Height, len(Columns) == Width.
//   - For every block list L: sum(L) + max(0, len(L)-1) <= line length.
//   - Constraints are immutable after construction.
package constraints
