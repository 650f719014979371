package backtrack

import "errors"

// Sentinel errors for the Backtracker.
var (
	// ErrDepthLimit indicates the configured maximum recursion depth was
	// reached before a solution was found.
	ErrDepthLimit = errors.New("backtrack: maximum depth reached")
	// ErrNodeLimit indicates the configured maximum explored-state count
	// was reached before a solution was found.
	ErrNodeLimit = errors.New("backtrack: maximum node count reached")
	// ErrNoSolution indicates every branch was refuted; the puzzle is
	// infeasible under the given constraints.
	ErrNoSolution = errors.New("backtrack: no solution found")
)
