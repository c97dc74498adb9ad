package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	AliveCells     [][2]int      `json:"alive_cells"`
	Pattern        string        `json:"pattern"`
	PatternRow     int           `json:"pattern_row"`
	PatternCol     int           `json:"pattern_col"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Workers        int           `json:"workers"`
	ShowStats      bool          `json:"show_stats"`
}

// DefaultConfig returns sensible defaults: a glider on a 7x7 board
func DefaultConfig() Config {
	return Config{
		Rows:           7,
		Cols:           7,
		Pattern:        "glider",
		PatternRow:     1,
		PatternCol:     1,
		FrameRate:      500 * time.Millisecond,
		MaxGenerations: 0, // run until extinct or stable
		Workers:        1,
		ShowStats:      true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the fields the game loop relies on. Pattern names are
// resolved when the board is built.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return errors.Wrapf(ErrInvalidConfig, "rows must be positive, got %d", c.Rows)
	case c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cols must be positive, got %d", c.Cols)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}
