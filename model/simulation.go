package model

import "github.com/pkg/errors"

// Status is where a simulation stands after a step.
type Status int

const (
	Running Status = iota
	Extinct
	Stable
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Extinct:
		return "Extinct"
	case Stable:
		return "Stable"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further steps should be taken
func (s Status) Terminal() bool {
	return s == Extinct || s == Stable
}

// Step advances the board one generation and classifies the result. Only the
// immediately previous generation is compared, so oscillators keep Running.
func Step(b *Board) (Status, error) {
	previous := b.Clone()

	if err := b.Advance(); err != nil {
		return Running, errors.Wrap(err, "[Step] failed to advance board")
	}

	if !b.HasAnyAliveCells() {
		return Extinct, nil
	}
	if previous.Equals(b) {
		return Stable, nil
	}
	return Running, nil
}
