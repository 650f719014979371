package propagate

import (
	"runtime"
	"sync"

	"github.com/go-nonogram/nonosolve/constraints"
	"github.com/go-nonogram/nonosolve/grid"
	"github.com/go-nonogram/nonosolve/linesolve"
)

// ParallelDriver runs the same line-solving contract as Propagator, but
// evaluates one pass's row jobs (then column jobs) concurrently across a
// worker pool sized to the available hardware parallelism. Jobs are pure:
// each reads its own line snapshot and returns deductions without
// mutating the grid. Gathered deductions are applied to the grid serially
// in (row, col) order, so two workers discovering the same deduction
// produce one idempotent change.
type ParallelDriver struct {
	workers int
}

// NewParallelDriver returns a ParallelDriver sized to runtime.GOMAXPROCS(0).
func NewParallelDriver() *ParallelDriver {
	return &ParallelDriver{workers: runtime.GOMAXPROCS(0)}
}

type lineJob struct {
	index int
	line  []grid.CellState
	block []int
}

type lineJobResult struct {
	index     int
	positions []linesolve.PositionState
	err       error
}

// Run drives g to a fixed point under c using concurrent row/column line
// solving each pass. It returns ErrIterationLimit if 1000 passes elapse
// without convergence.
func (d *ParallelDriver) Run(g *grid.Grid, c *constraints.Constraints) (Result, error) {
	var result Result

	for result.Passes < maxPasses {
		result.Passes++
		changed := false

		rowDeds, err := d.solveRows(g, c)
		if err != nil {
			return result, err
		}
		if len(rowDeds) > 0 {
			changed = true
			if err := applyAll(g, rowDeds); err != nil {
				return result, err
			}
			result.Deductions = append(result.Deductions, rowDeds...)
		}

		colDeds, err := d.solveColumns(g, c)
		if err != nil {
			return result, err
		}
		if len(colDeds) > 0 {
			changed = true
			if err := applyAll(g, colDeds); err != nil {
				return result, err
			}
			result.Deductions = append(result.Deductions, colDeds...)
		}

		if !changed {
			grid.SortDeductions(result.Deductions)

			return result, nil
		}
	}

	grid.SortDeductions(result.Deductions)

	return result, ErrIterationLimit
}

func (d *ParallelDriver) solveRows(g *grid.Grid, c *constraints.Constraints) ([]grid.Deduction, error) {
	jobs := make([]lineJob, g.Height())
	for r := 0; r < g.Height(); r++ {
		line, err := g.Row(r)
		if err != nil {
			return nil, err
		}
		block, err := c.Row(r)
		if err != nil {
			return nil, err
		}
		jobs[r] = lineJob{index: r, line: line, block: block}
	}

	results, err := d.runJobs(jobs)
	if err != nil {
		return nil, err
	}

	var out []grid.Deduction
	for _, res := range results {
		for _, ps := range res.positions {
			out = append(out, grid.Deduction{Row: res.index, Col: ps.Pos, State: ps.State})
		}
	}

	return out, nil
}

func (d *ParallelDriver) solveColumns(g *grid.Grid, c *constraints.Constraints) ([]grid.Deduction, error) {
	jobs := make([]lineJob, g.Width())
	for col := 0; col < g.Width(); col++ {
		line, err := g.Column(col)
		if err != nil {
			return nil, err
		}
		block, err := c.Column(col)
		if err != nil {
			return nil, err
		}
		jobs[col] = lineJob{index: col, line: line, block: block}
	}

	results, err := d.runJobs(jobs)
	if err != nil {
		return nil, err
	}

	var out []grid.Deduction
	for _, res := range results {
		for _, ps := range res.positions {
			out = append(out, grid.Deduction{Row: ps.Pos, Col: res.index, State: ps.State})
		}
	}

	return out, nil
}

// runJobs evaluates every job across a semaphore-bounded worker pool. Each
// goroutine owns a fresh linesolve.Solver — caches are never shared across
// workers.
func (d *ParallelDriver) runJobs(jobs []lineJob) ([]lineJobResult, error) {
	results := make([]lineJobResult, len(jobs))
	sem := make(chan struct{}, d.workers)
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, job lineJob) {
			defer wg.Done()
			defer func() { <-sem }()

			solver := linesolve.New()
			positions, err := solver.Solve(job.line, job.block)
			results[i] = lineJobResult{index: job.index, positions: positions, err: err}
		}(i, job)
	}
	wg.Wait()

	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}
	}

	return results, nil
}

func applyAll(g *grid.Grid, ds []grid.Deduction) error {
	sorted := append([]grid.Deduction(nil), ds...)
	grid.SortDeductions(sorted)
	for _, d := range sorted {
		if err := g.Apply(d); err != nil {
			return err
		}
	}

	return nil
}
