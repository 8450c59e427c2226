package runner

import (
	"math"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
)

// Boss is the adversary of the boss fight. It drifts horizontally along a
// sine wave around its base position and fires attacks.
type Boss struct {
	Health  int
	X       float64
	Attacks []Attack
	ticks   int // Ticks since the fight started
}

func newBoss(cfg config.BossConfig) *Boss {
	return &Boss{
		Health: cfg.Health,
		X:      cfg.StartX,
	}
}

// target returns where the boss wants to be after elapsed seconds.
func target(cfg config.BossConfig, elapsed float64) float64 {
	return cfg.BaseX + cfg.Amplitude*math.Sin(elapsed)
}

// move eases the boss toward its sine target. The oscillation phase is
// driven by the tick count so a fight replays identically.
func (b *Boss) move(cfg config.BossConfig, tickRate int) {
	b.ticks++
	if tickRate <= 0 {
		tickRate = 60
	}
	elapsed := float64(b.ticks) / float64(tickRate)
	b.X += (target(cfg, elapsed) - b.X) * cfg.Smoothing
}

// hit removes health, never going below zero, and reports whether the boss
// is defeated.
func (b *Boss) hit(damage int) bool {
	b.Health = max(0, b.Health-damage)
	return b.Health == 0
}
