package propagate

import (
	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/crossanalysis"
	"github.com/go-nonogram/nonosolve/grid"
	"github.com/go-nonogram/nonosolve/heuristics"
	"github.com/go-nonogram/nonosolve/linesolve"
)

// Config selects which deduction techniques a Propagator pass runs beyond
// the mandatory line solver.
type Config struct {
	UseCrossAnalysis      bool
	UseAdvancedHeuristics bool
	// MaxIterations overrides the default 1000-pass cap when positive.
	MaxIterations int
}

// Result is the outcome of a Propagator.Run call.
type Result struct {
	// Deductions is the full log, sorted by (row, col).
	Deductions []grid.Deduction
	// Passes is the number of passes executed, including the final
	// zero-deduction pass that confirmed the fixed point.
	Passes int
}

// Propagator alternates row and column line solving to a fixed point,
// optionally layering cross-analysis and advanced heuristics each pass.
type Propagator struct {
	lines      *linesolve.Solver
	crossAnlzr *crossanalysis.Analyzer
	adv        *heuristics.Heuristics
	cfg        Config
	passCap    int
}

// New returns a Propagator configured by cfg.
func New(cfg Config) *Propagator {
	passCap := maxPasses
	if cfg.MaxIterations > 0 {
		passCap = cfg.MaxIterations
	}

	return &Propagator{
		lines:      linesolve.New(),
		crossAnlzr: crossanalysis.New(),
		adv:        heuristics.New(),
		cfg:        cfg,
		passCap:    passCap,
	}
}

// Run drives g to a fixed point under c. It returns ErrIterationLimit if
// the pass cap (1000, or Config.MaxIterations) elapses without
// convergence; deductions applied before the limit remain in
// Result.Deductions and on g.
func (p *Propagator) Run(g *grid.Grid, c *constraints.Constraints) (Result, error) {
	var result Result

	for result.Passes < p.passCap {
		result.Passes++
		changed := false

		lineDeds, err := p.lineSolvePass(g, c)
		if err != nil {
			return result, err
		}
		if len(lineDeds) > 0 {
			changed = true
			result.Deductions = append(result.Deductions, lineDeds...)
		}

		if p.cfg.UseCrossAnalysis {
			crossDeds, err := p.crossAnlzr.Analyze(g, c)
			if err != nil {
				return result, err
			}
			applied, err := applyNew(g, crossDeds)
			if err != nil {
				return result, err
			}
			if len(applied) > 0 {
				changed = true
				result.Deductions = append(result.Deductions, applied...)
			}
		}

		if p.cfg.UseAdvancedHeuristics {
			advDeds, err := p.adv.Apply(g, c)
			if err != nil {
				return result, err
			}
			applied, err := applyNew(g, advDeds)
			if err != nil {
				return result, err
			}
			if len(applied) > 0 {
				changed = true
				result.Deductions = append(result.Deductions, applied...)
			}
		}

		if !changed {
			grid.SortDeductions(result.Deductions)

			return result, nil
		}
	}

	grid.SortDeductions(result.Deductions)

	return result, ErrIterationLimit
}

// lineSolvePass solves every row then every column with the line solver,
// applying each line's deductions to the grid before the next line is read
// so later lines in the same pass observe earlier updates.
func (p *Propagator) lineSolvePass(g *grid.Grid, c *constraints.Constraints) ([]grid.Deduction, error) {
	var out []grid.Deduction

	for r := 0; r < g.Height(); r++ {
		line, err := g.Row(r)
		if err != nil {
			return nil, err
		}
		block, err := c.Row(r)
		if err != nil {
			return nil, err
		}
		positions, err := p.lines.Solve(line, block)
		if err != nil {
			return nil, err
		}
		for _, ps := range positions {
			d := grid.Deduction{Row: r, Col: ps.Pos, State: ps.State}
			if err := g.Apply(d); err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}

	for col := 0; col < g.Width(); col++ {
		line, err := g.Column(col)
		if err != nil {
			return nil, err
		}
		block, err := c.Column(col)
		if err != nil {
			return nil, err
		}
		positions, err := p.lines.Solve(line, block)
		if err != nil {
			return nil, err
		}
		for _, ps := range positions {
			d := grid.Deduction{Row: ps.Pos, Col: col, State: ps.State}
			if err := g.Apply(d); err != nil {
				return nil, err
			}
			out = append(out, d)
		}
	}

	return out, nil
}

// applyNew applies only the deductions whose target cell is still Empty,
// skipping stale suggestions from a technique computed against a slightly
// earlier grid snapshot within the same pass.
func applyNew(g *grid.Grid, ds []grid.Deduction) ([]grid.Deduction, error) {
	var out []grid.Deduction
	for _, d := range ds {
		cur, err := g.At(d.Row, d.Col)
		if err != nil {
			return nil, err
		}
		if cur != grid.Empty {
			continue
		}
		if err := g.Apply(d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
