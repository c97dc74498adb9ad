package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrOutOfRange       = errors.New("out of range")
)

// Axis names the grid dimension an error refers to.
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// DimensionError is returned when a board is built with a non-positive row or column count.
type DimensionError struct {
	Axis  Axis
	Value int
}

func (e *DimensionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s count can not be 0 or less, got %d", ErrInvalidDimension, e.Axis, e.Value)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }

// RangeError is returned by a cell lookup outside the grid.
type RangeError struct {
	Axis  Axis
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %d does not exist (valid 0..%d)", ErrOutOfRange, e.Axis, e.Index, e.Limit-1)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
