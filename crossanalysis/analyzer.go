package crossanalysis

import (
	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
)

// Analyzer computes overlap and edge-forcing deductions across every line
// of a grid without enumerating full line completions.
type Analyzer struct{}

// New returns an Analyzer. It holds no state.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze scans every row and column, applying overlap analysis then edge
// forcing, and returns the deduplicated deductions sorted by (row, col).
func (a *Analyzer) Analyze(g *grid.Grid, c *constraints.Constraints) ([]grid.Deduction, error) {
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
		out = append(out, overlapLine(line, block, func(pos int, s grid.CellState) grid.Deduction {
			return grid.Deduction{Row: r, Col: pos, State: s}
		})...)
		out = append(out, edgeForceLine(line, block, func(pos int, s grid.CellState) grid.Deduction {
			return grid.Deduction{Row: r, Col: pos, State: s}
		})...)
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
		out = append(out, overlapLine(line, block, func(pos int, s grid.CellState) grid.Deduction {
			return grid.Deduction{Row: pos, Col: col, State: s}
		})...)
		out = append(out, edgeForceLine(line, block, func(pos int, s grid.CellState) grid.Deduction {
			return grid.Deduction{Row: pos, Col: col, State: s}
		})...)
	}

	return dedupe(out), nil
}

// overlapLine emits Filled for every position whose block movement
// envelope is forced to overlap: max_start(k) < min_start(k) + b_k.
func overlapLine(line []grid.CellState, constraint []int, toDeduction func(int, grid.CellState) grid.Deduction) []grid.Deduction {
	if len(constraint) == 0 {
		return nil
	}

	length := len(line)
	var out []grid.Deduction

	for k, blockSize := range constraint {
		minStart := minStartPos(constraint, k)
		maxStart := maxStartPos(constraint, k, length)

		if maxStart < minStart+blockSize {
			for pos := maxStart; pos < minStart+blockSize; pos++ {
				if pos >= 0 && pos < length && line[pos] == grid.Empty {
					out = append(out, toDeduction(pos, grid.Filled))
				}
			}
		}
	}

	return out
}

func minStartPos(constraint []int, blockIdx int) int {
	pos := 0
	for i := 0; i < blockIdx; i++ {
		pos += constraint[i] + 1
	}

	return pos
}

func maxStartPos(constraint []int, blockIdx, length int) int {
	pos := length
	for i := blockIdx + 1; i < len(constraint); i++ {
		pos -= constraint[i] + 1
		if pos < 0 {
			pos = 0
		}
	}
	pos -= constraint[blockIdx]
	if pos < 0 {
		pos = 0
	}

	return pos
}

// edgeForceLine forces the first (last) block to the line's start (end)
// boundary when a Filled cell already lies within that block's reach.
func edgeForceLine(line []grid.CellState, constraint []int, toDeduction func(int, grid.CellState) grid.Deduction) []grid.Deduction {
	if len(constraint) == 0 {
		return nil
	}

	length := len(line)
	var out []grid.Deduction

	firstBlock := constraint[0]
	for col, cell := range line {
		if cell != grid.Filled {
			continue
		}
		if col < firstBlock {
			for fillCol := 0; fillCol < firstBlock; fillCol++ {
				if line[fillCol] == grid.Empty {
					out = append(out, toDeduction(fillCol, grid.Filled))
				}
			}
			if firstBlock < length && line[firstBlock] == grid.Empty {
				out = append(out, toDeduction(firstBlock, grid.Crossed))
			}
		}
		break
	}

	lastBlock := constraint[len(constraint)-1]
	for col := length - 1; col >= 0; col-- {
		if line[col] != grid.Filled {
			continue
		}
		if col >= length-lastBlock {
			for fillCol := length - lastBlock; fillCol < length; fillCol++ {
				if line[fillCol] == grid.Empty {
					out = append(out, toDeduction(fillCol, grid.Filled))
				}
			}
			if length > lastBlock && line[length-lastBlock-1] == grid.Empty {
				out = append(out, toDeduction(length-lastBlock-1, grid.Crossed))
			}
		}
		break
	}

	return out
}

func dedupe(ds []grid.Deduction) []grid.Deduction {
	grid.SortDeductions(ds)

	out := ds[:0]
	var last *grid.Deduction
	for _, d := range ds {
		if last != nil && last.Row == d.Row && last.Col == d.Col {
			continue
		}
		out = append(out, d)
		cp := d
		last = &cp
	}

	return out
}
