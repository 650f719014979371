package backtrack

import (
	"errors"

	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/contradiction"
	"github.com/go-nonogram/nonosolve/grid"
	"github.com/go-nonogram/nonosolve/propagate"
)

// Config controls the Backtracker's limits and which pre-branch sweeps run.
type Config struct {
	MaxDepth         int
	MaxStates        int
	UseNakedSingles  bool
	UseHiddenSingles bool
}

// DefaultConfig matches the reference implementation's tuned defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:         50,
		MaxStates:        100000,
		UseNakedSingles:  true,
		UseHiddenSingles: true,
	}
}

// engine holds all search state for one Solve call, following the
// dedicated-struct-over-closures idiom used elsewhere in this module for
// recursive search (no captured state, explicit dependencies).
type engine struct {
	cfg            Config
	prop           *propagate.Propagator
	detector       *contradiction.Detector
	statesExplored int
	visited        map[string]bool
}

// Solve drives g to a fixed point, then — if cells remain Empty — applies
// naked- and hidden-single sweeps and finally branches via MRV-plus search.
// It returns every deduction applied, including those made before a depth
// or node limit was hit.
func Solve(g *grid.Grid, c *constraints.Constraints, cfg Config) ([]grid.Deduction, error) {
	e := &engine{
		cfg:      cfg,
		prop:     propagate.New(propagate.Config{UseCrossAnalysis: true, UseAdvancedHeuristics: true}),
		detector: contradiction.New(),
		visited:  make(map[string]bool),
	}

	var all []grid.Deduction

	propRes, err := e.prop.Run(g, c)
	all = append(all, propRes.Deductions...)
	if err != nil && !errors.Is(err, propagate.ErrIterationLimit) {
		grid.SortDeductions(all)

		return all, err
	}
	if g.CountEmpty() == 0 {
		grid.SortDeductions(all)

		return all, nil
	}

	if cfg.UseNakedSingles {
		ds, err := e.nakedSingles(g, c)
		all = append(all, ds...)
		if err != nil {
			grid.SortDeductions(all)

			return all, err
		}
	}
	if g.CountEmpty() == 0 {
		grid.SortDeductions(all)

		return all, nil
	}

	if cfg.UseHiddenSingles {
		ds, err := e.hiddenSingles(g, c)
		all = append(all, ds...)
		if err != nil {
			grid.SortDeductions(all)

			return all, err
		}
	}
	if g.CountEmpty() == 0 {
		grid.SortDeductions(all)

		return all, nil
	}

	ds, err := e.branch(g, c, 0)
	all = append(all, ds...)
	grid.SortDeductions(all)

	return all, err
}

// nakedSingles repeatedly tests Filled and Crossed on every Empty cell; a
// cell where exactly one hypothesis survives ContradictionDetector is
// committed. Runs to a fixed point.
func (e *engine) nakedSingles(g *grid.Grid, c *constraints.Constraints) ([]grid.Deduction, error) {
	var out []grid.Deduction
	changed := true

	for changed {
		changed = false
		for r := 0; r < g.Height(); r++ {
			for col := 0; col < g.Width(); col++ {
				cur, err := g.At(r, col)
				if err != nil {
					return out, err
				}
				if cur != grid.Empty {
					continue
				}

				filledOK := e.detector.TestHypothesis(g, c, r, col, grid.Filled)
				crossedOK := e.detector.TestHypothesis(g, c, r, col, grid.Crossed)

				var state grid.CellState
				switch {
				case filledOK && !crossedOK:
					state = grid.Filled
				case !filledOK && crossedOK:
					state = grid.Crossed
				default:
					continue
				}

				d := grid.Deduction{Row: r, Col: col, State: state}
				if err := g.Apply(d); err != nil {
					return out, err
				}
				out = append(out, d)
				changed = true
			}
		}
	}

	return out, nil
}

// hiddenSingles enumerates, for each block of each row and column, every
// start position still consistent with the full line constraint (the
// tightened form: consistency is checked via ContradictionDetector rather
// than only against Crossed barriers). A block with exactly one candidate
// start is placed.
func (e *engine) hiddenSingles(g *grid.Grid, c *constraints.Constraints) ([]grid.Deduction, error) {
	var out []grid.Deduction

	for r := 0; r < g.Height(); r++ {
		block, err := c.Row(r)
		if err != nil {
			return out, err
		}
		for _, size := range block {
			ds, err := e.placeIfUnique(g, c, r, size, true)
			if err != nil {
				return out, err
			}
			out = append(out, ds...)
		}
	}

	for col := 0; col < g.Width(); col++ {
		block, err := c.Column(col)
		if err != nil {
			return out, err
		}
		for _, size := range block {
			ds, err := e.placeIfUnique(g, c, col, size, false)
			if err != nil {
				return out, err
			}
			out = append(out, ds...)
		}
	}

	return out, nil
}

func (e *engine) placeIfUnique(g *grid.Grid, c *constraints.Constraints, index, size int, isRow bool) ([]grid.Deduction, error) {
	length := g.Width()
	if !isRow {
		length = g.Height()
	}

	var starts []int
	for s := 0; s+size <= length; s++ {
		ok, err := e.canPlaceBlock(g, c, isRow, index, s, size)
		if err != nil {
			return nil, err
		}
		if ok {
			starts = append(starts, s)
		}
	}
	if len(starts) != 1 {
		return nil, nil
	}

	var out []grid.Deduction
	start := starts[0]
	for i := 0; i < size; i++ {
		row, col := index, start+i
		if !isRow {
			row, col = start+i, index
		}
		cur, err := g.At(row, col)
		if err != nil {
			return out, err
		}
		if cur != grid.Empty {
			continue
		}
		d := grid.Deduction{Row: row, Col: col, State: grid.Filled}
		if err := g.Apply(d); err != nil {
			return out, err
		}
		out = append(out, d)
	}

	return out, nil
}

// canPlaceBlock reports whether filling [start, start+size) of the given
// row/column with Filled (leaving already-Filled cells as is) keeps the
// grid consistent with c, per ContradictionDetector.
func (e *engine) canPlaceBlock(g *grid.Grid, c *constraints.Constraints, isRow bool, index, start, size int) (bool, error) {
	clone := g.Clone()
	for i := 0; i < size; i++ {
		row, col := index, start+i
		if !isRow {
			row, col = start+i, index
		}
		cur, err := clone.At(row, col)
		if err != nil {
			return false, err
		}
		if cur == grid.Crossed {
			return false, nil
		}
		if cur == grid.Empty {
			if err := clone.Set(row, col, grid.Filled); err != nil {
				return false, err
			}
		}
	}

	return e.detector.IsValid(clone, c), nil
}

// branch is the recursive MRV-plus search. It propagates at entry, picks
// the highest-scoring Empty cell, and tries Filled then Crossed, undoing a
// branch that is refuted and bubbling depth/node limit errors immediately
// (preserving whatever deductions were already committed).
func (e *engine) branch(g *grid.Grid, c *constraints.Constraints, depth int) ([]grid.Deduction, error) {
	if depth >= e.cfg.MaxDepth {
		return nil, ErrDepthLimit
	}
	if e.statesExplored >= e.cfg.MaxStates {
		return nil, ErrNodeLimit
	}
	e.statesExplored++

	if g.CountEmpty() == 0 {
		return nil, nil
	}

	key := g.Serialize()
	if e.visited[key] {
		return nil, ErrNoSolution
	}
	e.visited[key] = true

	var collected []grid.Deduction

	propRes, err := e.prop.Run(g, c)
	collected = append(collected, propRes.Deductions...)
	if err != nil && !errors.Is(err, propagate.ErrIterationLimit) {
		return collected, ErrNoSolution
	}
	if g.CountEmpty() == 0 {
		return collected, nil
	}

	row, col, ok := e.chooseBestCell(g, c)
	if !ok {
		return collected, ErrNoSolution
	}

	snapshot := g.Clone()
	for _, state := range [2]grid.CellState{grid.Filled, grid.Crossed} {
		if !e.detector.TestHypothesis(g, c, row, col, state) {
			continue
		}

		d := grid.Deduction{Row: row, Col: col, State: state}
		if err := g.Apply(d); err != nil {
			return collected, err
		}

		sub, err := e.branch(g, c, depth+1)
		if err == nil {
			return append(append(collected, d), sub...), nil
		}
		if errors.Is(err, ErrDepthLimit) || errors.Is(err, ErrNodeLimit) {
			return append(append(collected, d), sub...), err
		}

		// Refuted: undo the hypothesis and everything the sub-branch
		// propagated, then try the other branch.
		for r := 0; r < snapshot.Height(); r++ {
			line, err := snapshot.Row(r)
			if err != nil {
				return collected, err
			}
			if err := g.SetRow(r, line); err != nil {
				return collected, err
			}
		}
	}

	return collected, ErrNoSolution
}

// chooseBestCell picks the Empty cell with the highest MRV-plus score; the
// first cell to reach a new maximum wins ties, matching the reference scan
// order (row-major).
func (e *engine) chooseBestCell(g *grid.Grid, c *constraints.Constraints) (row, col int, ok bool) {
	bestScore := -1

	for r := 0; r < g.Height(); r++ {
		for cc := 0; cc < g.Width(); cc++ {
			v, _ := g.At(r, cc)
			if v != grid.Empty {
				continue
			}
			score := e.cellScore(g, c, r, cc)
			if score > bestScore {
				bestScore = score
				row, col, ok = r, cc, true
			}
		}
	}

	return row, col, ok
}

// cellScore combines Filled density in the cell's row and column, the
// weight of its constraints, and proximity to an edge.
func (e *engine) cellScore(g *grid.Grid, c *constraints.Constraints, row, col int) int {
	score := 0

	filledInRow := 0
	for cc := 0; cc < g.Width(); cc++ {
		if v, _ := g.At(row, cc); v == grid.Filled {
			filledInRow++
		}
	}
	score += filledInRow * 10

	filledInCol := 0
	for r := 0; r < g.Height(); r++ {
		if v, _ := g.At(r, col); v == grid.Filled {
			filledInCol++
		}
	}
	score += filledInCol * 10

	if rowBlock, err := c.Row(row); err == nil {
		score += len(rowBlock) * 5
		for _, b := range rowBlock {
			score += b
		}
	}
	if colBlock, err := c.Column(col); err == nil {
		score += len(colBlock) * 5
		for _, b := range colBlock {
			score += b
		}
	}

	distToEdge := min(row, g.Height()-1-row) + min(col, g.Width()-1-col)
	if distToEdge > 10 {
		distToEdge = 10
	}
	score += (10 - distToEdge) * 2

	return score
}
