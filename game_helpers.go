package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus/game"
	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

// applyFlags overrides config values with the flags set on the command line
func applyFlags(fs *flag.FlagSet, args []string, config *utils.Config) (configFile, writeStart string, err error) {
	fs.StringVar(&configFile, "config", "config.json", "JSON configuration file")
	fs.StringVar(&writeStart, "write-start", "", "write the initial board in startup file format to this path")

	fs.IntVar(&config.Height, "height", config.Height, "board height")
	fs.IntVar(&config.Width, "width", config.Width, "board width")
	fs.IntVar(&config.Underpopulation, "underpopulation", config.Underpopulation, "a live cell dies at or below this neighbor count")
	fs.IntVar(&config.Overpopulation, "overpopulation", config.Overpopulation, "a live cell dies at or above this neighbor count")
	fs.IntVar(&config.Reproduction, "reproduction", config.Reproduction, "a dead cell is born at exactly this neighbor count")
	fs.DurationVar(&config.FrameRate, "frame-rate", config.FrameRate, "delay between generations")
	fs.Float64Var(&config.SpeedModifier, "speed", config.SpeedModifier, "speed multiplier applied to the frame rate")
	fs.BoolVar(&config.ShowDeadCells, "show-dead", config.ShowDeadCells, "draw dead cells")
	fs.BoolVar(&config.DisplayStats, "stats", config.DisplayStats, "print the population line above the board")
	fs.IntVar(&config.MaxGenerations, "max-generations", config.MaxGenerations, "last step to render, -1 for no limit")
	fs.StringVar(&config.InitMode, "init", config.InitMode, "initial board: random, file or glider")
	fs.StringVar(&config.StartFile, "start-file", config.StartFile, "startup file for -init=file")
	fs.Float64Var(&config.RandomDensity, "density", config.RandomDensity, "probability of a live cell for -init=random")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "random seed, 0 for time based")
	fs.StringVar(&config.Renderer, "renderer", config.Renderer, "output: text or screen")
	fs.BoolVar(&config.ClearScreen, "clear", config.ClearScreen, "clear the terminal before each text frame")

	err = fs.Parse(args)
	return
}

// initializeBoard builds the first generation from the configured source
func initializeBoard(config utils.Config) (*model.Board, error) {
	switch config.InitMode {
	case utils.InitFile:
		return model.ReadBoardFile(config.StartFile, config.Height, config.Width)
	case utils.InitGlider:
		return model.GliderBoard(config.Height, config.Width), nil
	default:
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return model.RandomBoard(config.Height, config.Width, config.RandomDensity, rand.New(rand.NewSource(seed))), nil
	}
}

// runGame runs the loop and, with the screen renderer, the key watcher
func runGame(ctx context.Context, config utils.Config, board *model.Board, out io.Writer, logger *log.Logger) (*game.Loop, error) {
	var (
		renderer model.Renderer
		screen   *model.ScreenRenderer
	)
	switch config.Renderer {
	case utils.RendererScreen:
		s, err := model.NewScreenRenderer(config.ShowDeadCells, config.DisplayStats)
		if err != nil {
			return nil, err
		}
		renderer, screen = s, s
	default:
		renderer = &model.TextRenderer{
			Out:           out,
			ShowDeadCells: config.ShowDeadCells,
			DisplayStats:  config.DisplayStats,
			ClearScreen:   config.ClearScreen,
			Logger:        logger,
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := game.NewLoop(config, board, renderer, game.TimerPacer{Delay: config.StepDelay()})

	var eg errgroup.Group
	eg.Go(func() error {
		if screen != nil {
			defer screen.Close()
		}
		return loop.Run(ctx)
	})
	if screen != nil {
		eg.Go(func() error {
			screen.WatchKeys(cancel)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return loop, errors.Wrap(err, "[runGame] simulation stopped")
	}
	return loop, nil
}
