package linesolve

import (
	"strconv"
	"strings"

	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
)

// PositionState is a deduced cell within one line: position Pos (0-based
// offset into the line) takes on State. Callers translate this into a
// grid.Deduction by supplying the line's row or column index.
type PositionState struct {
	Pos   int
	State grid.CellState
}

// Solver enumerates valid placements of one line's blocks and memoizes
// per-position Filled/Crossed counts keyed by (line state, constraint).
type Solver struct {
	cache map[string]*positionCounts
}

// New returns a Solver with an empty cache.
func New() *Solver {
	return &Solver{cache: make(map[string]*positionCounts)}
}

// Reset clears the memoization cache. Call between unrelated puzzles.
func (s *Solver) Reset() {
	s.cache = make(map[string]*positionCounts)
}

type positionCounts struct {
	filled  []int
	crossed []int
	total   int
}

func newPositionCounts(n int) *positionCounts {
	return &positionCounts{filled: make([]int, n), crossed: make([]int, n)}
}

// Solve returns every position in line whose value is identical across all
// valid completions consistent with line's current state and constraint.
// Positions already non-Empty are skipped. An empty constraint deduces
// Crossed at every Empty position. ErrInfeasibleLine is returned when no
// completion is consistent with the line's current state.
func (s *Solver) Solve(line []grid.CellState, constraint []int) ([]PositionState, error) {
	length := len(line)

	if len(constraint) == 0 {
		var out []PositionState
		for i, c := range line {
			if c == grid.Empty {
				out = append(out, PositionState{Pos: i, State: grid.Crossed})
			}
		}

		return out, nil
	}

	key := signature(line, constraint)
	counts, ok := s.cache[key]
	if !ok {
		counts = newPositionCounts(length)
		if constraints.MinLineLength(constraint) <= length {
			e := &lineEngine{line: line, constraint: constraint, length: length, counts: counts}
			e.enumerate(0, 0, make([]grid.CellState, length))
		}
		s.cache[key] = counts
	}

	if counts.total == 0 {
		return nil, ErrInfeasibleLine
	}

	var out []PositionState
	for i, c := range line {
		if c != grid.Empty {
			continue
		}
		switch {
		case counts.filled[i] == counts.total:
			out = append(out, PositionState{Pos: i, State: grid.Filled})
		case counts.crossed[i] == counts.total:
			out = append(out, PositionState{Pos: i, State: grid.Crossed})
		}
	}

	return out, nil
}

func signature(line []grid.CellState, constraint []int) string {
	var b strings.Builder
	for _, c := range line {
		b.WriteString(c.String())
	}
	b.WriteByte('|')
	for i, k := range constraint {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(k))
	}

	return b.String()
}

// lineEngine holds the line and constraint being enumerated for one Solve
// call and accumulates per-position counts directly, avoiding storage of
// every individual completion.
type lineEngine struct {
	line       []grid.CellState
	constraint []int
	length     int
	counts     *positionCounts
}

func (e *lineEngine) enumerate(blockIndex, startPos int, current []grid.CellState) {
	if blockIndex >= len(e.constraint) {
		completion := append([]grid.CellState(nil), current...)
		for i := startPos; i < e.length; i++ {
			if completion[i] == grid.Empty {
				completion[i] = grid.Crossed
			}
		}
		if !compatible(completion, e.line) {
			return
		}
		e.counts.total++
		for i, st := range completion {
			if st == grid.Filled {
				e.counts.filled[i]++
			} else {
				e.counts.crossed[i]++
			}
		}

		return
	}

	blockSize := e.constraint[blockIndex]
	remainingBlocks := 0
	for _, b := range e.constraint[blockIndex+1:] {
		remainingBlocks += b
	}
	remainingSeparators := 0
	if blockIndex+1 < len(e.constraint) {
		remainingSeparators = len(e.constraint) - blockIndex - 1
	}
	maxPos := e.length - blockSize - remainingBlocks - remainingSeparators

	for pos := startPos; pos <= maxPos; pos++ {
		next := append([]grid.CellState(nil), current...)
		for i := startPos; i < pos; i++ {
			if next[i] == grid.Empty {
				next[i] = grid.Crossed
			}
		}

		canPlace := true
		for i := pos; i < pos+blockSize; i++ {
			if e.line[i] == grid.Crossed {
				canPlace = false
				break
			}
			next[i] = grid.Filled
		}
		if !canPlace {
			continue
		}

		nextStart := pos + blockSize
		if blockIndex+1 < len(e.constraint) {
			if pos+blockSize >= e.length || e.line[pos+blockSize] == grid.Filled {
				continue
			}
			next[pos+blockSize] = grid.Crossed
			nextStart = pos + blockSize + 1
		}

		e.enumerate(blockIndex+1, nextStart, next)
	}
}

func compatible(completion, line []grid.CellState) bool {
	for i, ls := range line {
		if ls == grid.Empty {
			continue
		}
		if completion[i] != ls {
			return false
		}
	}

	return true
}
