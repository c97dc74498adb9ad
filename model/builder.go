package model

// BoardConfig collects what NewBoard needs. Each With method returns an
// updated copy, so a config can be shared and extended without aliasing.
type BoardConfig struct {
	Rows       int
	Cols       int
	AliveCells []Position
	Workers    int
}

// WithRows sets the number of rows
func (c BoardConfig) WithRows(rows int) BoardConfig {
	c.Rows = rows
	return c
}

// WithCols sets the number of columns
func (c BoardConfig) WithCols(cols int) BoardConfig {
	c.Cols = cols
	return c
}

// WithAliveCellsOn adds positions that start alive
func (c BoardConfig) WithAliveCellsOn(positions ...Position) BoardConfig {
	alive := make([]Position, 0, len(c.AliveCells)+len(positions))
	alive = append(alive, c.AliveCells...)
	c.AliveCells = append(alive, positions...)
	return c
}

// WithWorkers sets how many rows Advance may compute concurrently
func (c BoardConfig) WithWorkers(n int) BoardConfig {
	c.Workers = n
	return c
}

// Build validates the dimensions and creates the board
func (c BoardConfig) Build() (*Board, error) {
	return NewBoard(c.Rows, c.Cols, c.AliveCells, WithWorkers(c.Workers))
}
