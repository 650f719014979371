package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-nonogram/nonosolve/backtrack"
	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
)

func TestSolve_ClosedByPropagationAlone(t *testing.T) {
	g := grid.New(3, 3)
	rows := [][]int{{1}, {3}, {1}}
	cols := [][]int{{1}, {3}, {1}}
	c, err := constraints.New(3, 3, rows, cols)
	require.NoError(t, err)

	ds, err := backtrack.Solve(g, c, backtrack.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, g.CountEmpty(), "fully constrained puzzle should close without branching")
	assert.NotEmpty(t, ds)
}

func TestSolve_RequiresBranching(t *testing.T) {
	// A 4x4 puzzle with one single cell per row/column: every permutation
	// placement is a valid solution, so propagation deduces nothing and the
	// placement is only fixed by search.
	g := grid.New(4, 4)
	rows := [][]int{{1}, {1}, {1}, {1}}
	cols := [][]int{{1}, {1}, {1}, {1}}
	c, err := constraints.New(4, 4, rows, cols)
	require.NoError(t, err)

	ds, err := backtrack.Solve(g, c, backtrack.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, g.CountEmpty())
	assert.Equal(t, 4, g.CountFilled(), "one Filled cell per row")
	for _, d := range ds {
		assert.Contains(t, []grid.CellState{grid.Filled, grid.Crossed}, d.State)
	}
}

func TestSolve_Infeasible(t *testing.T) {
	g := grid.New(2, 2)
	c, err := constraints.New(2, 2, [][]int{{2}, {2}}, [][]int{{1}, {1}})
	require.NoError(t, err)
	// rows force every cell Filled (4 total), but the column constraints
	// only admit 1 Filled cell per column (2 total) -- contradictory.
	_, err = backtrack.Solve(g, c, backtrack.DefaultConfig())
	assert.Error(t, err)
}

func TestSolve_DepthLimitPreservesProgress(t *testing.T) {
	g := grid.New(4, 4)
	rows := [][]int{{1}, {1}, {1}, {1}}
	cols := [][]int{{1}, {1}, {1}, {1}}
	c, err := constraints.New(4, 4, rows, cols)
	require.NoError(t, err)

	cfg := backtrack.DefaultConfig()
	cfg.MaxDepth = 0
	ds, err := backtrack.Solve(g, c, cfg)
	assert.Error(t, err)
	// Propagation alone yields no deductions for this puzzle (each row/col
	// constraint [1] admits many placements); the limit error must still
	// report without panicking and without a non-nil deduction slice
	// misrepresenting unset cells.
	for _, d := range ds {
		v, err := g.At(d.Row, d.Col)
		require.NoError(t, err)
		assert.Equal(t, d.State, v, "every reported deduction must match the committed grid state")
	}
}

func TestSolve_Deterministic(t *testing.T) {
	rows := [][]int{{1}, {3}, {5}, {3}, {1}}
	cols := [][]int{{1}, {3}, {5}, {3}, {1}}
	c, err := constraints.New(5, 5, rows, cols)
	require.NoError(t, err)

	g1 := grid.New(5, 5)
	_, err1 := backtrack.Solve(g1, c, backtrack.DefaultConfig())
	require.NoError(t, err1)

	g2 := grid.New(5, 5)
	_, err2 := backtrack.Solve(g2, c, backtrack.DefaultConfig())
	require.NoError(t, err2)

	assert.Equal(t, g1.Serialize(), g2.Serialize())
}
