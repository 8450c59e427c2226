package runner

import (
	"testing"
	"time"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
)

// quietConfig is the default tuning with random spawning disabled so tests
// can place hazards by hand.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.ObstacleChance = 0
	cfg.Spawner.AttackChance = 0
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Seed = seed
	return rt
}

// fakeClock fires timers only when advanced.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	pending := !t.stopped && !t.fired
	t.stopped = true
	return pending
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now += d
	for _, t := range c.timers {
		if t.stopped || t.fired || t.at > c.now {
			continue
		}
		t.fired = true
		t.f()
	}
}

// enterBossFight starts a run and ticks until the boss fight begins.
func enterBossFight(t *testing.T, g *Game) {
	t.Helper()

	if !g.StartRun() {
		t.Fatalf("StartRun refused in phase %v", g.Phase())
	}
	for range g.cfg.Progression.BossDistance {
		g.Tick()
	}
	if p := g.Phase(); p != PhaseBossFight {
		t.Fatalf("expected boss fight after %d ticks, got %v", g.cfg.Progression.BossDistance, p)
	}
}
