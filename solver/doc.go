// Package solver provides the top-level dispatcher that runs a Grid
// through every deduction phase in order: Propagator, optionally
// ParallelDriver, then optionally the Backtracker. Each phase is checked
// for completion before the next runs, and the concatenated Deduction log
// from every phase that ran is returned.
package solver
