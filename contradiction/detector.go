package contradiction

import (
	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
	"github.com/go-nonogram/nonosolve/linesolve"
)

// Detector checks grid feasibility against a set of constraints. It owns a
// linesolve.Solver used as a per-line feasibility oracle.
type Detector struct {
	lines *linesolve.Solver
}

// New returns a Detector with a fresh line-solver cache.
func New() *Detector {
	return &Detector{lines: linesolve.New()}
}

// IsValid reports whether g could still be completed to satisfy c. It
// returns false as soon as any row or column is provably infeasible,
// either via a cheap structural check or because the line solver finds no
// valid completion for that line.
func (d *Detector) IsValid(g *grid.Grid, c *constraints.Constraints) bool {
	for r := 0; r < g.Height(); r++ {
		line, err := g.Row(r)
		if err != nil {
			return false
		}
		block, err := c.Row(r)
		if err != nil {
			return false
		}
		if !d.lineFeasible(line, block) {
			return false
		}
	}

	for col := 0; col < g.Width(); col++ {
		line, err := g.Column(col)
		if err != nil {
			return false
		}
		block, err := c.Column(col)
		if err != nil {
			return false
		}
		if !d.lineFeasible(line, block) {
			return false
		}
	}

	return true
}

func (d *Detector) lineFeasible(line []grid.CellState, block []int) bool {
	if !cheapChecks(line, block) {
		return false
	}

	_, err := d.lines.Solve(line, block)
	return err == nil
}

// cheapChecks applies the structural checks that do not require
// enumeration: run count versus block count, each run's size against its
// earliest candidate block, total Filled against the sum of blocks, and
// usable space against the line's minimum required length.
func cheapChecks(line []grid.CellState, block []int) bool {
	runs := findFilledRuns(line)

	if len(runs) > len(block) {
		return false
	}
	for i, run := range runs {
		if run.size > block[i] {
			return false
		}
	}

	filledCount := 0
	for _, c := range line {
		if c == grid.Filled {
			filledCount++
		}
	}
	requiredSum := 0
	for _, b := range block {
		requiredSum += b
	}
	if filledCount > requiredSum {
		return false
	}

	usable := 0
	for _, c := range line {
		if c != grid.Crossed {
			usable++
		}
	}
	if usable < constraints.MinLineLength(block) {
		return false
	}

	return true
}

// TestHypothesis clones g, applies (row, col) = state, and reports whether
// the result is still valid per IsValid.
func (d *Detector) TestHypothesis(g *grid.Grid, c *constraints.Constraints, row, col int, state grid.CellState) bool {
	clone := g.Clone()
	if err := clone.Set(row, col, state); err != nil {
		return false
	}

	return d.IsValid(clone, c)
}

type filledRun struct {
	start, size int
}

func findFilledRuns(line []grid.CellState) []filledRun {
	var runs []filledRun
	inRun := false
	start, size := 0, 0

	for i, cell := range line {
		if cell == grid.Filled {
			if !inRun {
				inRun = true
				start, size = i, 1
			} else {
				size++
			}
		} else if inRun {
			runs = append(runs, filledRun{start: start, size: size})
			inRun = false
		}
	}
	if inRun {
		runs = append(runs, filledRun{start: start, size: size})
	}

	return runs
}
