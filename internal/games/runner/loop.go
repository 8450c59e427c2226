package runner

import (
	"context"
	"time"
)

// Stepper is the part of the engine the loop drives.
type Stepper interface {
	Tick()
	Active() bool
	Subscribe() (<-chan PhaseChange, func())
}

// Loop drives a Stepper at a fixed rate while it is active and sleeps on
// phase changes otherwise, so an idle engine costs no ticks.
type Loop struct {
	game     Stepper
	interval time.Duration

	// OnTick, if set, runs after every tick outside the engine lock.
	OnTick func()
}

// NewLoop creates a loop ticking tickRate times per second.
func NewLoop(game Stepper, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		game:     game,
		interval: time.Second / time.Duration(tickRate),
	}
}

// Run blocks until ctx is done and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	changes, cancel := l.game.Subscribe()
	defer cancel()

	for {
		if !l.game.Active() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-changes:
				continue
			}
		}

		if err := l.runActive(ctx, changes); err != nil {
			return err
		}
	}
}

// runActive ticks until the engine leaves its active phases.
func (l *Loop) runActive(ctx context.Context, changes <-chan PhaseChange) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changes:
		case <-ticker.C:
			l.game.Tick()
			if l.OnTick != nil {
				l.OnTick()
			}
		}

		if !l.game.Active() {
			return nil
		}
	}
}
