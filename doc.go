// Package nonosolve is the deductive-reasoning core of a nonogram (hanjie)
// solver: given a Grid and its row/column run-length Constraints, it
// derives every cell value provable from the puzzle's logic alone.
//
// The core exposes exactly three operations:
//
//	grid.New(width, height) *grid.Grid
//	constraints.New(width, height, rows, columns) (*constraints.Constraints, error)
//	solver.Solve(g, c, cfg) ([]grid.Deduction, error)
//
// Everything else — image parsing, OCR, file I/O, rendering, a CLI — is
// out of scope; this module's only contract is turning a grid and its
// constraints into a list of proven cell states.
//
// Subpackages, by role:
//
//	grid/          — CellState, Grid, Deduction: the shared data model
//	constraints/   — row/column run-length constraints and their invariants
//	linesolve/     — exact single-line solver via placement enumeration
//	crossanalysis/ — cheap overlap and edge-forcing deductions, no enumeration
//	heuristics/    — glue, mercury, joining/splitting, and punctuation rules
//	contradiction/ — feasibility checks used to prune and to test hypotheses
//	propagate/     — fixed-point driver (serial and worker-pool variants)
//	backtrack/     — exact search with MRV-plus branching when propagation stalls
//	solver/        — orchestrates all of the above into one Solve call
package nonosolve
