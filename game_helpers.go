package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

// renderer is what the game loop needs from model.TerminalRenderer
type renderer interface {
	Display(b *model.Board)
	Clear()
}

// boardConfig turns the file config into a board description
func boardConfig(config utils.Config) (model.BoardConfig, error) {
	bc := model.BoardConfig{}.
		WithRows(config.Rows).
		WithCols(config.Cols).
		WithWorkers(config.Workers)

	for _, rc := range config.AliveCells {
		bc = bc.WithAliveCellsOn(model.Position{Row: rc[0], Col: rc[1]})
	}

	if config.Pattern != "" {
		positions, err := model.PatternByName(config.Pattern, config.PatternRow, config.PatternCol)
		if err != nil {
			return bc, errors.Wrap(err, "[boardConfig] failed to place pattern")
		}
		bc = bc.WithAliveCellsOn(positions...)
	}

	return bc, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Board,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	bc, err := boardConfig(config)
	if err != nil {
		return nil, nil, nil, err
	}

	board, err := bc.Build()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to build board")
	}

	return board, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Workers: %d\n",
		board.RowCount(), board.ColCount(), board.CountLivingCells(), max(config.Workers, 1))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(status model.Status, config utils.Config, stats *utils.Stats) {
	if !config.ShowStats {
		return
	}
	fmt.Printf("Gen: %d | Living: %d | Status: %s\n",
		stats.TotalGenerations, stats.Population, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// finalMessage explains why the game stopped
func finalMessage(status model.Status) string {
	switch status {
	case model.Extinct:
		return "All cells are dead."
	case model.Stable:
		return "The situation is stable."
	default:
		return "Simulation stopped."
	}
}

// reachedMaxGenerations reports whether the generation cap has been hit
func reachedMaxGenerations(generation int, config utils.Config) bool {
	return config.MaxGenerations > 0 && generation >= config.MaxGenerations
}

// runGame draws and steps the board until it dies out, stabilises, hits the
// generation cap or ctx is cancelled. It returns the last status and the
// number of generations computed.
func runGame(
	ctx context.Context,
	board *model.Board,
	config utils.Config,
	r renderer,
	stats *utils.Stats,
) (model.Status, int, error) {
	var (
		generation = 0
		status     = model.Running
	)

	stats.Update(generation, board.CountLivingCells(), 0)

	for {
		r.Clear()
		r.Display(board)
		displayGameStatus(status, config, stats)

		if status.Terminal() || reachedMaxGenerations(generation, config) {
			return status, generation, nil
		}

		select {
		case <-ctx.Done():
			return status, generation, ctx.Err()
		default:
		}

		frameStart := time.Now()

		var err error
		if status, err = model.Step(board); err != nil {
			return status, generation, errors.Wrapf(err, "[runGame] generation %d", generation+1)
		}
		generation++
		stats.Update(generation, board.CountLivingCells(), time.Since(frameStart))

		if status.Terminal() {
			continue
		}

		select {
		case <-ctx.Done():
			return status, generation, ctx.Err()
		case <-time.After(config.FrameRate):
		}
	}
}
