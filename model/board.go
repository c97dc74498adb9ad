package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Position is a (row, col) coordinate on a Board, row 0 at the top and col 0 at the left.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Row is one horizontal line of cells, col 0 first.
type Row []Cell

// Board is a fixed-size, non-wrapping grid of cells.
//
//	         |  col 0  |  col 1  |  col 2  |
//	row 0    | [0][0]  | [0][1]  | [0][2]  |
//	row 1    | [1][0]  | [1][1]  | [1][2]  |
//	row 2    | [2][0]  | [2][1]  | [2][2]  |
//
// The shape never changes after NewBoard; Advance replaces the whole grid.
type Board struct {
	rowCount int
	colCount int
	rows     []Row

	// rows of the next generation computed concurrently; <= 1 means sequential
	workers int
}

// Option tweaks how a Board computes generations.
type Option func(*Board)

// WithWorkers spreads each Advance over up to n goroutines, one row at a time
func WithWorkers(n int) Option {
	return func(b *Board) {
		b.workers = n
	}
}

// NewBoard creates a rows x cols board where exactly the cells listed in alive start alive.
// Duplicate and out-of-range positions are ignored.
func NewBoard(rows, cols int, alive []Position, opts ...Option) (*Board, error) {
	if rows <= 0 {
		return nil, &DimensionError{Axis: AxisRow, Value: rows}
	}
	if cols <= 0 {
		return nil, &DimensionError{Axis: AxisColumn, Value: cols}
	}

	b := &Board{
		rowCount: rows,
		colCount: cols,
		rows:     newRows(rows, cols),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, p := range alive {
		if b.contains(p.Row, p.Col) {
			b.rows[p.Row][p.Col] = NewCell(true)
		}
	}

	return b, nil
}

func newRows(rows, cols int) []Row {
	grid := make([]Row, rows)
	for i := range grid {
		grid[i] = make(Row, cols)
	}
	return grid
}

// RowCount returns the number of rows
func (b *Board) RowCount() int {
	return b.rowCount
}

// ColCount returns the number of columns
func (b *Board) ColCount() int {
	return b.colCount
}

func (b *Board) contains(row, col int) bool {
	return row >= 0 && row < b.rowCount && col >= 0 && col < b.colCount
}

// GetCell returns the cell at (row, col) or a *RangeError naming the offending axis.
func (b *Board) GetCell(row, col int) (Cell, error) {
	if row < 0 || row >= b.rowCount {
		return Cell{}, &RangeError{Axis: AxisRow, Index: row, Limit: b.rowCount}
	}
	if col < 0 || col >= b.colCount {
		return Cell{}, &RangeError{Axis: AxisColumn, Index: col, Limit: b.colCount}
	}
	return b.rows[row][col], nil
}

// Rows returns a copy of the grid in row-major order for rendering.
func (b *Board) Rows() []Row {
	view := make([]Row, b.rowCount)
	for i, row := range b.rows {
		view[i] = append(Row(nil), row...)
	}
	return view
}

// AliveNeighbors counts the live cells around (row, col). The window is
// clamped to the grid, so edges see 5 neighbors and corners 3.
func (b *Board) AliveNeighbors(row, col int) (int, error) {
	if _, err := b.GetCell(row, col); err != nil {
		return 0, err
	}

	var (
		count = 0
		minR  = max(0, row-1)
		maxR  = min(b.rowCount-1, row+1)
		minC  = max(0, col-1)
		maxC  = min(b.colCount-1, col+1)
	)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			cell, err := b.GetCell(r, c)
			if err != nil {
				return 0, err
			}
			if cell.IsAlive() {
				count++
			}
		}
	}

	return count, nil
}

// nextRow computes row r of the next generation from the current grid only
func (b *Board) nextRow(r int) (Row, error) {
	next := make(Row, b.colCount)
	for c := range b.colCount {
		cell, err := b.GetCell(r, c)
		if err != nil {
			return nil, err
		}
		neighbors, err := b.AliveNeighbors(r, c)
		if err != nil {
			return nil, err
		}
		next[c] = cell.Next(neighbors)
	}
	return next, nil
}

// Advance moves the board to the next generation. The new grid is built
// separately and swapped in once every cell is computed; on error the board is
// left untouched.
func (b *Board) Advance() error {
	next := make([]Row, b.rowCount)

	if b.workers <= 1 {
		for r := range b.rowCount {
			row, err := b.nextRow(r)
			if err != nil {
				return errors.Wrapf(err, "[Advance] failed to compute row: %+v", r)
			}
			next[r] = row
		}
		b.rows = next
		return nil
	}

	var eg errgroup.Group
	eg.SetLimit(b.workers)

	for r := range b.rowCount {
		eg.Go(func() error {
			row, err := b.nextRow(r)
			if err != nil {
				return errors.Wrapf(err, "[Advance] failed to compute row: %+v", r)
			}
			next[r] = row
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	b.rows = next
	return nil
}

// HasAnyAliveCells reports whether at least one cell is alive
func (b *Board) HasAnyAliveCells() bool {
	for _, row := range b.rows {
		for _, cell := range row {
			if cell.IsAlive() {
				return true
			}
		}
	}
	return false
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, row := range b.rows {
		for _, cell := range row {
			if cell.IsAlive() {
				count++
			}
		}
	}
	return
}

// Equals reports whether other has the same shape and the same state in every cell.
func (b *Board) Equals(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.rowCount != other.rowCount || b.colCount != other.colCount {
		return false
	}
	for r, row := range b.rows {
		for c, cell := range row {
			if cell != other.rows[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		rowCount: b.rowCount,
		colCount: b.colCount,
		rows:     b.Rows(),
		workers:  b.workers,
	}
}
