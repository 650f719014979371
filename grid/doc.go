// Package grid defines the core data model for a nonogram solve: CellState,
// the Grid itself, and the Deduction log every solver component appends to.
//
// What:
//
//   - CellState is a three-valued tag: Empty (unknown), Filled (proven part
//     of a run), Crossed (proven not part of any run).
//   - Grid is a fixed-size width×height matrix of CellState with bounds-checked
//     read/write plus whole-row and whole-column accessors.
//   - Deduction is the (row, col, state) triple every solver emits when a
//     cell transitions out of Empty; it is the sole output of the engine.
//
// Invariants:
//
//   - Every cell is always one of Empty, Filled, or Crossed.
//   - Width and height are fixed at construction and never change.
//   - Deductions are only ever emitted for a cell leaving the Empty state.
//
// Complexity:
//
//   - At / Set: O(1).
//   - Row / Column: O(width) / O(height).
//   - Clone: O(width*height).
package grid
