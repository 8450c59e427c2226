package tui

import (
	"strings"
	"testing"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
)

func TestViewportRect(t *testing.T) {
	s := core.NewScreen(80, 25)
	v := newViewport(s, 800, 400)

	// 24 world rows of 400/24 units; the box rests on y=340, row 21.
	got := v.rect(core.NewBox(100, 300, 40, 40))
	want := core.NewRect(10, 19, 4, 2)
	if got != want {
		t.Errorf("rect() = %+v, expected %+v", got, want)
	}

	tiny := v.rect(core.NewBox(0, 0, 1, 1))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny boxes should still cover a cell, got %+v", tiny)
	}
}

func TestDrawWorldRun(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := core.NewScreen(80, 25)

	snap := runner.Snapshot{
		Phase:     runner.PhaseRunning,
		Score:     42,
		Distance:  42,
		Speed:     5,
		Obstacles: []runner.Obstacle{{ID: 1, X: 400, Kind: runner.ObstacleSpike}},
	}
	DrawWorld(s, snap, cfg)

	if !strings.Contains(s.Row(0), "SCORE 42") {
		t.Errorf("HUD row = %q", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "BOSS IN 2958") {
		t.Errorf("HUD should count down to the boss, row = %q", s.Row(0))
	}
	if s.Get(0, 21) != groundGlyph {
		t.Errorf("expected ground at row 21, got %q", s.Row(21))
	}
	if s.Get(10, 19) != playerGlyph || s.Get(13, 20) != playerGlyph {
		t.Errorf("player should cover (10..13, 19..20), row 19 = %q", s.Row(19))
	}
	if s.Get(40, 19) != spikeGlyph {
		t.Errorf("obstacle should be drawn at column 40, row 19 = %q", s.Row(19))
	}

	snap.PlayerOffset = 120
	DrawWorld(s, snap, cfg)
	if s.Get(10, 19) == playerGlyph {
		t.Error("jumping player should leave the lane")
	}
	if s.Get(10, 11) != playerGlyph {
		t.Errorf("jumping player should be drawn at row 11, row = %q", s.Row(11))
	}
}

func TestDrawWorldObstacleGlyphs(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := core.NewScreen(80, 25)

	tests := []struct {
		kind  runner.ObstacleKind
		glyph rune
	}{
		{runner.ObstacleSpike, spikeGlyph},
		{runner.ObstaclePit, pitGlyph},
		{runner.ObstacleEnemy, enemyGlyph},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			snap := runner.Snapshot{
				Phase:     runner.PhaseRunning,
				Speed:     5,
				Obstacles: []runner.Obstacle{{ID: 1, X: 400, Kind: tc.kind}},
			}
			DrawWorld(s, snap, cfg)
			if got := s.Get(40, 19); got != tc.glyph {
				t.Errorf("obstacle glyph = %q, expected %q", got, tc.glyph)
			}
		})
	}
}

func TestDrawWorldBoss(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := core.NewScreen(80, 25)

	snap := runner.Snapshot{
		Phase:        runner.PhaseBossFight,
		BossActive:   true,
		BossHealth:   50,
		BossX:        600,
		PlayerHealth: 2,
		Attacks:      []runner.Attack{{ID: 1, X: 300, Y: 200}},
	}
	DrawWorld(s, snap, cfg)

	hud := s.Row(0)
	if !strings.Contains(hud, "BOSS "+healthBar(50, 100, 20)) {
		t.Errorf("HUD should show the boss bar, got %q", hud)
	}
	if !strings.Contains(hud, "♥♥♡") {
		t.Errorf("HUD should show two of three hearts, got %q", hud)
	}
	if s.Get(30, 7) != attackGlyph {
		t.Errorf("attack should be drawn at (30, 7), row = %q", s.Row(7))
	}
}

func TestDrawWorldOverlays(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	tests := []struct {
		phase runner.Phase
		boss  bool
		title string
	}{
		{runner.PhaseRunEnded, false, "RUN OVER"},
		{runner.PhaseBossWon, true, "DARK CACAO DEFEATED"},
		{runner.PhaseBossLost, true, "YOU FELL"},
		{runner.PhaseRunning, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			s := core.NewScreen(80, 25)
			DrawWorld(s, runner.Snapshot{Phase: tc.phase, BossActive: tc.boss}, cfg)

			out := s.String()
			for _, title := range []string{"RUN OVER", "DARK CACAO DEFEATED", "YOU FELL"} {
				if got := strings.Contains(out, title); got != (title == tc.title) {
					t.Errorf("overlay %q shown = %v in phase %v", title, got, tc.phase)
				}
			}
		})
	}
}

func TestHealthBar(t *testing.T) {
	if got, want := healthBar(50, 100, 20), strings.Repeat("█", 10)+strings.Repeat("░", 10)+" 50"; got != want {
		t.Errorf("healthBar(50) = %q, expected %q", got, want)
	}
	if got := healthBar(0, 100, 4); got != "░░░░ 0" {
		t.Errorf("healthBar(0) = %q", got)
	}
	if got := healthBar(10, 0, 4); got != "" {
		t.Errorf("zero total should render nothing, got %q", got)
	}
}
