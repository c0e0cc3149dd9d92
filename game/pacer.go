package game

import (
	"context"
	"time"
)

// Pacer blocks between two rendered generations
type Pacer interface {
	// Wait returns nil once the delay elapsed, or ctx.Err() if ctx ends first
	Wait(ctx context.Context) error
}

// TimerPacer waits a fixed wall-clock delay
type TimerPacer struct {
	Delay time.Duration
}

// Wait sleeps for Delay unless ctx is cancelled first
func (p TimerPacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
