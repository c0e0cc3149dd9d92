// Package game drives a board through its generations.
package game

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/rules"
	"github.com/sheikhrachel/go-torus/utils"
)

// State is the phase the loop is in
type State int

const (
	// Paced waits for the step delay before the next render
	Paced State = iota
	// Running renders the current generation and computes the next one
	Running
	// Terminated is final: the step limit passed, the context ended or a render failed
	Terminated
)

func (s State) String() string {
	switch s {
	case Paced:
		return "paced"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Loop renders a board, advances it one generation, and waits, until the
// step limit is passed or its context is cancelled.
type Loop struct {
	rules          rules.Rules
	maxGenerations int
	stepLimited    bool

	current  *model.Board
	previous *model.Board

	renderer model.Renderer
	pacer    Pacer
	stats    *utils.Stats

	generation int
	state      State
}

// NewLoop takes ownership of board as the current generation
func NewLoop(config utils.Config, board *model.Board, renderer model.Renderer, pacer Pacer) *Loop {
	return &Loop{
		rules:          config.Rules,
		maxGenerations: config.MaxGenerations,
		stepLimited:    config.StepLimited(),
		current:        board,
		previous:       model.NewBoard(board.GetHeight(), board.GetWidth()),
		renderer:       renderer,
		pacer:          pacer,
		stats:          utils.NewStats(),
		state:          Paced,
	}
}

// Generation returns the number of completed steps
func (l *Loop) Generation() int {
	return l.generation
}

// State returns the current phase of the loop
func (l *Loop) State() State {
	return l.state
}

// Current returns the board holding the latest generation
func (l *Loop) Current() *model.Board {
	return l.current
}

// Stats returns the statistics gathered while rendering
func (l *Loop) Stats() *utils.Stats {
	return l.stats
}

// Run loops until the step limit is passed or ctx is cancelled; both return nil.
// A render failure stops the loop and is returned.
func (l *Loop) Run(ctx context.Context) error {
	lastFrame := time.Now()
	for {
		if l.stepLimited && l.generation > l.maxGenerations {
			l.state = Terminated
			return nil
		}

		if l.generation > 0 {
			l.state = Paced
			if err := l.pacer.Wait(ctx); err != nil {
				l.state = Terminated
				return nil
			}
		}

		l.state = Running
		frameStart := time.Now()
		if err := l.Step(); err != nil {
			l.state = Terminated
			return err
		}
		l.stats.Update(l.generation-1, l.previous.CountLivingCells(), frameStart.Sub(lastFrame))
		lastFrame = frameStart
	}
}

// Step renders the current generation and replaces it with the next one
func (l *Loop) Step() error {
	if err := l.renderer.Render(l.current, l.generation); err != nil {
		return errors.Wrapf(err, "[Loop.Step] rendering step %d", l.generation)
	}
	l.generation++
	l.previous.CopyFrom(l.current)
	model.NextGeneration(l.current, l.previous, l.rules)
	return nil
}
