package propagate_test

import (
	"testing"

	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
	"github.com/go-nonogram/nonosolve/propagate"
)

func TestRun_S5_EmptyRow(t *testing.T) {
	g := grid.New(5, 1)
	c, err := constraints.New(5, 1, [][]int{{}}, [][]int{{}, {}, {}, {}, {}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := propagate.New(propagate.Config{})
	res, err := p.Run(g, c)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.CountEmpty() != 0 {
		t.Fatalf("CountEmpty() = %d; want 0", g.CountEmpty())
	}
	if len(res.Deductions) != 5 {
		t.Fatalf("len(Deductions) = %d; want 5", len(res.Deductions))
	}
}

func TestRun_S6_PlusSign(t *testing.T) {
	g := grid.New(3, 3)
	rows := [][]int{{1}, {3}, {1}}
	cols := [][]int{{1}, {3}, {1}}
	c, err := constraints.New(3, 3, rows, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := propagate.New(propagate.Config{UseCrossAnalysis: true})
	if _, err := p.Run(g, c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.CountEmpty() != 0 {
		t.Fatalf("CountEmpty() = %d; want 0 (grid should close completely)", g.CountEmpty())
	}
	want := [][]grid.CellState{
		{grid.Crossed, grid.Filled, grid.Crossed},
		{grid.Filled, grid.Filled, grid.Filled},
		{grid.Crossed, grid.Filled, grid.Crossed},
	}
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			v, _ := g.At(r, col)
			if v != want[r][col] {
				t.Errorf("(%d,%d) = %v; want %v", r, col, v, want[r][col])
			}
		}
	}
}

func TestRun_FullBorderRowsWithSingleBlockColumns(t *testing.T) {
	// 5x5 with full-length top/bottom rows and columns 0/4 also full-length:
	// columns 0 and 4 fill their entire length, which forces two Filled
	// cells (col 0 and col 4) into each of rows 1-3, contradicting those
	// rows' single-block-of-one constraint. The line solver must surface
	// this as an infeasible line rather than silently producing a grid.
	g := grid.New(5, 5)
	rows := [][]int{{5}, {1}, {1}, {1}, {5}}
	cols := [][]int{{5}, {1, 1}, {1, 1}, {1, 1}, {5}}
	c, err := constraints.New(5, 5, rows, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := propagate.New(propagate.Config{UseCrossAnalysis: true, UseAdvancedHeuristics: true})
	if _, err := p.Run(g, c); err == nil {
		t.Fatal("Run succeeded on a contradictory puzzle; want an infeasibility error")
	}
}

func TestRun_Diamond(t *testing.T) {
	// A consistent 5x5 diamond: row/column run lengths 1,3,5,3,1.
	g := grid.New(5, 5)
	rows := [][]int{{1}, {3}, {5}, {3}, {1}}
	cols := [][]int{{1}, {3}, {5}, {3}, {1}}
	c, err := constraints.New(5, 5, rows, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := propagate.New(propagate.Config{UseCrossAnalysis: true, UseAdvancedHeuristics: true})
	if _, err := p.Run(g, c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.CountEmpty() != 0 {
		t.Fatalf("CountEmpty() = %d; want 0 (diamond should close completely)", g.CountEmpty())
	}
	want := [][]grid.CellState{
		{grid.Crossed, grid.Crossed, grid.Filled, grid.Crossed, grid.Crossed},
		{grid.Crossed, grid.Filled, grid.Filled, grid.Filled, grid.Crossed},
		{grid.Filled, grid.Filled, grid.Filled, grid.Filled, grid.Filled},
		{grid.Crossed, grid.Filled, grid.Filled, grid.Filled, grid.Crossed},
		{grid.Crossed, grid.Crossed, grid.Filled, grid.Crossed, grid.Crossed},
	}
	for r := 0; r < 5; r++ {
		for col := 0; col < 5; col++ {
			v, _ := g.At(r, col)
			if v != want[r][col] {
				t.Errorf("(%d,%d) = %v; want %v", r, col, v, want[r][col])
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	g := grid.New(3, 3)
	rows := [][]int{{1}, {3}, {1}}
	cols := [][]int{{1}, {3}, {1}}
	c, err := constraints.New(3, 3, rows, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := propagate.New(propagate.Config{UseCrossAnalysis: true})
	if _, err := p.Run(g, c); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	before := g.Serialize()

	res2, err := p.Run(g, c)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(res2.Deductions) != 0 {
		t.Fatalf("second Run produced %d deductions; want 0", len(res2.Deductions))
	}
	if g.Serialize() != before {
		t.Fatalf("grid changed on second Run")
	}
}

func TestRun_DeductionsSorted(t *testing.T) {
	g := grid.New(5, 5)
	rows := [][]int{{1}, {3}, {5}, {3}, {1}}
	cols := [][]int{{1}, {3}, {5}, {3}, {1}}
	c, err := constraints.New(5, 5, rows, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := propagate.New(propagate.Config{UseCrossAnalysis: true})
	res, err := p.Run(g, c)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 1; i < len(res.Deductions); i++ {
		prev, cur := res.Deductions[i-1], res.Deductions[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col < prev.Col) {
			t.Fatalf("deductions not sorted at %d: %v then %v", i, prev, cur)
		}
	}
}

func BenchmarkRun_Diamond25(b *testing.B) {
	rows := [][]int{{1}, {3}, {5}, {3}, {1}}
	cols := [][]int{{1}, {3}, {5}, {3}, {1}}
	c, err := constraints.New(5, 5, rows, cols)
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := grid.New(5, 5)
		p := propagate.New(propagate.Config{UseCrossAnalysis: true, UseAdvancedHeuristics: true})
		if _, err := p.Run(g, c); err != nil {
			b.Fatalf("Run: %v", err)
		}
	}
}
