package grid

import (
	"fmt"
	"sort"
)

// CellState is the three-valued state of one grid cell.
type CellState int

const (
	// Empty means the cell's value is still unknown.
	Empty CellState = iota
	// Filled means the cell is proven to be part of a run.
	Filled
	// Crossed means the cell is proven not to be part of any run.
	Crossed
)

// String renders a CellState using the conventional ". # X" alphabet used
// for the visited-state serialization key (see Grid.Serialize).
func (s CellState) String() string {
	switch s {
	case Empty:
		return "."
	case Filled:
		return "#"
	case Crossed:
		return "X"
	default:
		return "?"
	}
}

// Deduction is a proven cell-state transition: cell (Row, Col) moved from
// Empty to State. Deductions are append-only and are the sole output of
// every solver component.
type Deduction struct {
	Row, Col int
	State    CellState
}

func (d Deduction) String() string {
	return fmt.Sprintf("(%d,%d)=%s", d.Row, d.Col, d.State)
}

// SortDeductions orders a deduction slice by (Row, Col). Every public
// entrypoint in this module returns deductions in this order so results
// are reproducible across runs.
func SortDeductions(ds []Deduction) {
	sort.Slice(ds, func(i, j int) bool {
		if ds[i].Row != ds[j].Row {
			return ds[i].Row < ds[j].Row
		}
		return ds[i].Col < ds[j].Col
	})
}
