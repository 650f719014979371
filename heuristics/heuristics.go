package heuristics

import (
	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
)

// Heuristics applies the glue, mercury, joining/splitting, and punctuation
// rules to every line of a grid.
type Heuristics struct{}

// New returns a Heuristics. It holds no state.
func New() *Heuristics {
	return &Heuristics{}
}

// Apply runs all four rules once over every row and column and returns the
// deduplicated, sorted union of deductions. Callers wanting the rules'
// fixed point should re-invoke Apply until it returns an empty slice.
func (h *Heuristics) Apply(g *grid.Grid, c *constraints.Constraints) ([]grid.Deduction, error) {
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
		out = append(out, glueLine(r, line, block, true)...)
		out = append(out, mercuryLine(r, line, block, true)...)
		out = append(out, joinSplitLine(r, line, block, true)...)
		out = append(out, punctuateLine(r, line, block, true)...)
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
		out = append(out, glueLine(col, line, block, false)...)
		out = append(out, mercuryLine(col, line, block, false)...)
		out = append(out, joinSplitLine(col, line, block, false)...)
		out = append(out, punctuateLine(col, line, block, false)...)
	}

	return dedupe(out), nil
}

func makeDeduction(index, pos int, state grid.CellState, isRow bool) grid.Deduction {
	if isRow {
		return grid.Deduction{Row: index, Col: pos, State: state}
	}

	return grid.Deduction{Row: pos, Col: index, State: state}
}

// filledRun is one contiguous run of Filled cells: [Start, Start+Size).
type filledRun struct {
	Start, Size int
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
			runs = append(runs, filledRun{Start: start, Size: size})
			inRun = false
		}
	}
	if inRun {
		runs = append(runs, filledRun{Start: start, Size: size})
	}

	return runs
}

// glueLine extends a partial run of size s (0 < s < b) toward a known
// block size b it can only be part of: if the run is more than half of b
// it cannot belong to two different blocks, so it must extend by b-s on
// whichever side has room.
func glueLine(index int, line []grid.CellState, constraint []int, isRow bool) []grid.Deduction {
	if len(constraint) == 0 {
		return nil
	}

	var out []grid.Deduction

	for _, run := range findFilledRuns(line) {
		for _, blockSize := range constraint {
			if !(run.Size > blockSize/2 && run.Size < blockSize) {
				continue
			}
			missing := blockSize - run.Size

			if run.Start >= missing {
				canExtendLeft := true
				for i := run.Start - missing; i < run.Start; i++ {
					if line[i] != grid.Empty && line[i] != grid.Filled {
						canExtendLeft = false
						break
					}
				}
				if canExtendLeft {
					for i := run.Start - missing; i < run.Start; i++ {
						if line[i] == grid.Empty {
							out = append(out, makeDeduction(index, i, grid.Filled, isRow))
						}
					}
				}
			}

			end := run.Start + run.Size
			if end+missing <= len(line) {
				canExtendRight := true
				for i := end; i < end+missing; i++ {
					if line[i] != grid.Empty && line[i] != grid.Filled {
						canExtendRight = false
						break
					}
				}
				if canExtendRight {
					for i := end; i < end+missing; i++ {
						if line[i] == grid.Empty {
							out = append(out, makeDeduction(index, i, grid.Filled, isRow))
						}
					}
				}
			}
		}
	}

	return out
}

// mercuryLine restates overlap the way crossanalysis does, but — unlike
// overlap — lets a Crossed cell inside [minPos, maxPos] retract candidate
// start positions before the min/max are taken: a block can only "settle"
// (like mercury sinking) into the contiguous Crossed-free segment that
// actually admits it. For a block with no Crossed barrier in its window
// this reduces to the plain overlap formula; when a barrier is present it
// can force cells overlap alone would miss.
func mercuryLine(index int, line []grid.CellState, constraint []int, isRow bool) []grid.Deduction {
	if len(constraint) == 0 {
		return nil
	}

	length := len(line)
	totalRequired := len(constraint) - 1
	for _, b := range constraint {
		totalRequired += b
	}
	if totalRequired > length {
		return nil
	}

	var out []grid.Deduction

	for k, blockSize := range constraint {
		minPos := 0
		for i := 0; i < k; i++ {
			minPos += constraint[i] + 1
		}

		maxPos := length - blockSize
		for i := k + 1; i < len(constraint); i++ {
			maxPos -= constraint[i] + 1
			if maxPos < 0 {
				maxPos = 0
			}
		}
		if maxPos < minPos {
			continue
		}

		// Restrict candidate starts to those whose span hits no Crossed
		// cell — i.e. that fit inside one Crossed-free segment — before
		// taking the overlap of the surviving starts.
		lo, hi := -1, -1
		for pos := minPos; pos <= maxPos; pos++ {
			if !spanCrossedFree(line, pos, blockSize) {
				continue
			}
			if lo == -1 {
				lo = pos
			}
			hi = pos
		}
		if lo == -1 {
			continue
		}

		if hi < lo+blockSize {
			end := lo + blockSize
			if end > length {
				end = length
			}
			for pos := hi; pos < end; pos++ {
				if line[pos] == grid.Empty {
					out = append(out, makeDeduction(index, pos, grid.Filled, isRow))
				}
			}
		}
	}

	return out
}

// spanCrossedFree reports whether line[start:start+size] contains no
// Crossed cell, i.e. a block of that size could occupy it without
// crossing a proven gap.
func spanCrossedFree(line []grid.CellState, start, size int) bool {
	for i := start; i < start+size; i++ {
		if line[i] == grid.Crossed {
			return false
		}
	}

	return true
}

// joinSplitLine merges two adjacent Filled runs separated by exactly one
// Empty cell when the line already has more runs than the constraint has
// blocks — those two runs must belong to the same block.
func joinSplitLine(index int, line []grid.CellState, constraint []int, isRow bool) []grid.Deduction {
	runs := findFilledRuns(line)
	if len(runs) <= len(constraint) {
		return nil
	}

	var out []grid.Deduction
	for i := 0; i < len(runs)-1; i++ {
		end := runs[i].Start + runs[i].Size
		if runs[i+1].Start == end+1 && line[end] == grid.Empty {
			out = append(out, makeDeduction(index, end, grid.Filled, isRow))
		}
	}

	return out
}

// punctuateLine crosses every remaining Empty cell once the line's Filled
// runs already match the constraint's blocks exactly, in order and size.
func punctuateLine(index int, line []grid.CellState, constraint []int, isRow bool) []grid.Deduction {
	runs := findFilledRuns(line)
	if len(runs) != len(constraint) {
		return nil
	}
	for i, run := range runs {
		if run.Size != constraint[i] {
			return nil
		}
	}

	var out []grid.Deduction
	for pos, cell := range line {
		if cell == grid.Empty {
			out = append(out, makeDeduction(index, pos, grid.Crossed, isRow))
		}
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
