package model

import "github.com/sheikhrachel/go-gol-board/rules"

// Cell is a single position on a Board. Its coordinates are implied by where
// it sits in the grid.
type Cell struct {
	alive bool
}

// NewCell returns a cell in the given state
func NewCell(alive bool) Cell {
	return Cell{alive: alive}
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.alive
}

// Next returns the cell for the following generation given its live neighbor count
func (c Cell) Next(aliveNeighbors int) Cell {
	return Cell{alive: rules.ComputeNext(c.alive, aliveNeighbors)}
}
