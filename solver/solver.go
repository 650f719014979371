package solver

import (
	"errors"
	"log"

	"github.com/go-nonogram/nonosolve/backtrack"
	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
	"github.com/go-nonogram/nonosolve/propagate"
)

// Solve drives g through the full phase pipeline: Propagator, optionally
// ParallelDriver, then optionally the Backtracker. Each phase is checked
// for completion (zero Empty cells) before the next runs; the concatenated
// Deduction log from every phase that ran is returned, sorted by
// (row, col).
func Solve(g *grid.Grid, c *constraints.Constraints, cfg Config) ([]grid.Deduction, error) {
	var all []grid.Deduction

	if cfg.Verbose {
		log.Printf("solver: starting, %dx%d grid", g.Width(), g.Height())
	}

	propCfg := propagate.Config{
		UseCrossAnalysis:      cfg.UseCrossAnalysis,
		UseAdvancedHeuristics: cfg.UseAdvancedHeuristics,
		MaxIterations:         cfg.MaxIterations,
	}
	propRes, err := propagate.New(propCfg).Run(g, c)
	all = append(all, propRes.Deductions...)
	if cfg.Verbose {
		log.Printf("solver: propagator phase produced %d deductions in %d passes", len(propRes.Deductions), propRes.Passes)
	}
	if err != nil {
		grid.SortDeductions(all)

		return all, err
	}
	if g.CountEmpty() == 0 {
		grid.SortDeductions(all)

		return all, nil
	}

	if cfg.UseParallel {
		parRes, err := propagate.NewParallelDriver().Run(g, c)
		all = append(all, parRes.Deductions...)
		if cfg.Verbose {
			log.Printf("solver: parallel phase produced %d deductions in %d passes", len(parRes.Deductions), parRes.Passes)
		}
		if err != nil {
			grid.SortDeductions(all)

			return all, err
		}
		if g.CountEmpty() == 0 {
			grid.SortDeductions(all)

			return all, nil
		}
	}

	if cfg.UseBacktracking {
		btCfg := backtrack.DefaultConfig()
		if cfg.BacktrackingDepth > 0 {
			btCfg.MaxDepth = cfg.BacktrackingDepth
		}
		if cfg.BacktrackingMaxStates > 0 {
			btCfg.MaxStates = cfg.BacktrackingMaxStates
		}
		btCfg.UseNakedSingles = cfg.UseNakedSingles
		btCfg.UseHiddenSingles = cfg.UseHiddenSingles

		ds, err := backtrack.Solve(g, c, btCfg)
		all = append(all, ds...)
		if cfg.Verbose {
			log.Printf("solver: backtracking phase produced %d deductions", len(ds))
		}
		if err != nil {
			// A depth/node limit is a non-fatal search-budget cutoff, not
			// a top-level error: the caller gets back the partial log.
			if errors.Is(err, backtrack.ErrDepthLimit) || errors.Is(err, backtrack.ErrNodeLimit) {
				if cfg.Verbose {
					log.Printf("solver: backtracking phase hit a search limit (%v), returning partial progress", err)
				}
			} else {
				grid.SortDeductions(all)

				return all, err
			}
		}
	}

	if cfg.Verbose {
		log.Printf("solver: finished, %d cells remain empty", g.CountEmpty())
	}

	grid.SortDeductions(all)

	return all, nil
}
