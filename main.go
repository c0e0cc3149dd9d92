package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

func main() {
	logger := log.New(os.Stderr, "go-torus: ", log.LstdFlags)

	// Load configuration - fallback to defaults if file doesn't exist
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	config := utils.DefaultConfig()
	configFile, writeStart, err := applyFlags(fs, os.Args[1:], &config)
	if err != nil {
		logger.Fatalf("parsing flags: %v", err)
	}

	loaded, err := utils.LoadConfig(configFile)
	switch {
	case err == nil:
		// Flags win over the file, so parse them again on top of it
		config = loaded
		fs = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		if _, _, err = applyFlags(fs, os.Args[1:], &config); err != nil {
			logger.Fatalf("parsing flags: %v", err)
		}
	case errors.Is(err, os.ErrNotExist):
		logger.Printf("Using default configuration (%s not found)", configFile)
	default:
		logger.Fatalf("loading configuration: %v", err)
	}

	if err = config.Validate(); err != nil {
		logger.Fatalf("%v", err)
	}

	board, err := initializeBoard(config)
	if err != nil {
		logger.Fatalf("initializing board: %v", err)
	}
	if writeStart != "" {
		if err = model.WriteBoardFile(writeStart, board); err != nil {
			logger.Fatalf("%v", err)
		}
	}
	logger.Printf("Grid: %dx%d | Initial living cells: %d | Step delay: %v",
		config.Height, config.Width, board.CountLivingCells(), config.StepDelay())

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop, err := runGame(ctx, config, board, os.Stdout, logger)
	if err != nil {
		stop()
		logger.Fatalf("%v", err)
	}
	logger.Printf("Final stats: %s", loop.Stats().Summary())
}
