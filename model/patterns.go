package model

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownPattern = errors.New("unknown pattern")

// offsets relative to the pattern's top-left corner
var patterns = map[string][]Position{
	// .#.
	// ..#
	// ###
	"glider": {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	// ###
	"blinker": {{0, 0}, {0, 1}, {0, 2}},
	// ##
	// ##
	"block": {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	// .##.
	// #..#
	// .##.
	"beehive": {{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}},
	// .###
	// ###.
	"toad": {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
}

// Glider returns a glider heading down-right with its top-left corner at (row, col)
func Glider(row, col int) []Position {
	return offset(patterns["glider"], row, col)
}

// Blinker returns a horizontal period-2 oscillator starting at (row, col)
func Blinker(row, col int) []Position {
	return offset(patterns["blinker"], row, col)
}

// Block returns the 2x2 still life at (row, col)
func Block(row, col int) []Position {
	return offset(patterns["block"], row, col)
}

// PatternByName looks up a named pattern and places it at (row, col).
func PatternByName(name string, row, col int) ([]Position, error) {
	shape, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return offset(shape, row, col), nil
}

// PatternNames lists the known pattern names in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func offset(shape []Position, row, col int) []Position {
	placed := make([]Position, len(shape))
	for i, p := range shape {
		placed[i] = Position{Row: p.Row + row, Col: p.Col + col}
	}
	return placed
}
