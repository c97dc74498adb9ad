package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration:", err)
		config = utils.DefaultConfig()
	}

	board, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Println("Error setting up game:", err)
		os.Exit(1)
	}
	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	status, generation, err := runGame(ctx, board, config, renderer, stats)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\nShutting down gracefully...")
	case err != nil:
		fmt.Println("\nError running game:", err)
		os.Exit(1)
	case status == model.Running:
		fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
	default:
		fmt.Println()
		fmt.Println(finalMessage(status))
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n", generation, stats.Runtime().Seconds())
}
