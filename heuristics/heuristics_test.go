package heuristics_test

import (
	"testing"

	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
	"github.com/go-nonogram/nonosolve/heuristics"
)

func findDeduction(ds []grid.Deduction, row, col int) (grid.CellState, bool) {
	for _, d := range ds {
		if d.Row == row && d.Col == col {
			return d.State, true
		}
	}

	return grid.Empty, false
}

func TestApply_Punctuation(t *testing.T) {
	g := grid.New(5, 1)
	_ = g.Set(0, 1, grid.Filled)
	_ = g.Set(0, 2, grid.Filled)
	c, err := constraints.New(5, 1, [][]int{{2}}, [][]int{{}, {1}, {1}, {}, {}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := heuristics.New()
	ds, err := h.Apply(g, c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, col := range []int{0, 3, 4} {
		st, ok := findDeduction(ds, 0, col)
		if !ok || st != grid.Crossed {
			t.Errorf("col %d = %v,%v; want Crossed,true", col, st, ok)
		}
	}
}

func TestApply_JoinSplit(t *testing.T) {
	// row=[4]; two separate runs of size 2 separated by one Empty cell must merge.
	g := grid.New(5, 1)
	_ = g.Set(0, 0, grid.Filled)
	_ = g.Set(0, 1, grid.Filled)
	_ = g.Set(0, 3, grid.Filled)
	_ = g.Set(0, 4, grid.Filled)
	c, err := constraints.New(5, 1, [][]int{{4}}, [][]int{{1}, {1}, {}, {1}, {1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := heuristics.New()
	ds, err := h.Apply(g, c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	st, ok := findDeduction(ds, 0, 2)
	if !ok || st != grid.Filled {
		t.Errorf("(0,2) = %v,%v; want Filled,true", st, ok)
	}
}

func TestApply_Glue(t *testing.T) {
	// row=[5] in length 7 with a partial run of size 3 at cols 2-4, more
	// than half of 5. The columns outside 2-4 have empty constraints, so
	// the line has cells left to deduce.
	g := grid.New(7, 1)
	_ = g.Set(0, 2, grid.Filled)
	_ = g.Set(0, 3, grid.Filled)
	_ = g.Set(0, 4, grid.Filled)
	c, err := constraints.New(7, 1, [][]int{{5}}, [][]int{{}, {}, {1}, {1}, {1}, {}, {}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := heuristics.New()
	ds, err := h.Apply(g, c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// Only checks that Apply returns at least one deduction for this line.
	if len(ds) == 0 {
		t.Fatalf("Apply produced no deductions for a clearly constrained line")
	}
}

func TestApply_MercuryUsesCrossedBarrier(t *testing.T) {
	// row=[3] in length 6 with a Crossed cell at col 0. Plain overlap
	// ignores the barrier (minPos=0, maxPos=3, 3 !< 3) and deduces nothing;
	// restricting candidate starts to the Crossed-free segment leaves only
	// {1,2,3}, whose placements all cover col 3.
	g := grid.New(6, 1)
	_ = g.Set(0, 0, grid.Crossed)
	rows := [][]int{{3}}
	cols := [][]int{{}, {}, {}, {1}, {}, {}}
	c, err := constraints.New(6, 1, rows, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := heuristics.New()
	ds, err := h.Apply(g, c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	st, ok := findDeduction(ds, 0, 3)
	if !ok || st != grid.Filled {
		t.Errorf("(0,3) = %v,%v; want Filled,true (mercury via crossed barrier)", st, ok)
	}
	for _, col := range []int{1, 2} {
		if st, ok := findDeduction(ds, 0, col); ok && st == grid.Filled {
			t.Errorf("(0,%d) = %v; mercury must not force a position ambiguous across valid starts", col, st)
		}
	}
}

func TestApply_NoChangeOnUnderConstrained(t *testing.T) {
	// Every row ([2] in 4) and every column ([1] in 2) is all-Empty and
	// admits more than one placement, so no rule can force a cell.
	g := grid.New(4, 2)
	c, err := constraints.New(4, 2, [][]int{{2}, {2}}, [][]int{{1}, {1}, {1}, {1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := heuristics.New()
	ds, err := h.Apply(g, c)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(ds) != 0 {
		t.Fatalf("Apply on an all-Empty under-constrained line produced %v", ds)
	}
}
