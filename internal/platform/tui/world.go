package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
)

// Glyphs of the world view.
const (
	playerGlyph = '█'
	spikeGlyph  = '▲'
	pitGlyph    = '▼'
	enemyGlyph  = '☻'
	attackGlyph = '●'
	groundGlyph = '═'
	bossGlyph   = '▒'
)

// bossSize is the drawn size of the boss in world units. The boss has no
// hitbox; only its attacks collide.
const bossSize = 128

// runSky is the empty space drawn below the obstacle lane.
const runSky = 60

// viewport maps world units onto screen cells. Row 0 is the HUD.
type viewport struct {
	cols, rows     int
	worldW, worldH float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   max(1, dst.Height()-1),
		worldW: worldW,
		worldH: worldH,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.worldW))
}

func (v viewport) row(y float64) int {
	return 1 + int(math.Floor(y*float64(v.rows)/v.worldH))
}

// rect returns the cells covered by a box, at least one cell in size. The
// far edges are exclusive so a box resting on the ground stays above the
// ground row.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// DrawWorld renders a snapshot into dst.
func DrawWorld(dst *core.Screen, snap runner.Snapshot, cfg config.RunnerConfig) {
	dst.Clear()

	if snap.BossActive {
		drawArena(dst, snap, cfg)
	} else {
		drawRun(dst, snap, cfg)
	}

	switch snap.Phase {
	case runner.PhaseRunEnded:
		drawMessage(dst, core.ColorRed, "RUN OVER",
			fmt.Sprintf("Score %d  Best %d", snap.Score, snap.BestScore),
			"R: run again   Esc: menu")
	case runner.PhaseBossWon:
		drawMessage(dst, core.ColorGreen, "DARK CACAO DEFEATED",
			fmt.Sprintf("+%d score  +%d cacao", cfg.Boss.WinScoreBonus, cfg.Boss.WinCurrencyBonus),
			"Returning to the menu...")
	case runner.PhaseBossLost:
		drawMessage(dst, core.ColorRed, "YOU FELL",
			fmt.Sprintf("Score %d  Best %d", snap.Score, snap.BestScore),
			"R: run again   Esc: menu")
	}
}

func drawRun(dst *core.Screen, snap runner.Snapshot, cfg config.RunnerConfig) {
	hb := cfg.Hitboxes
	boxes := runner.NewHitboxes(hb)
	ground := hb.RunLaneY + hb.ObstacleSize
	v := newViewport(dst, hb.WorldWidth, ground+runSky)

	dst.DrawHLine(0, v.row(ground), dst.Width(), groundGlyph, core.ColorBrown)

	for _, o := range snap.Obstacles {
		glyph := spikeGlyph
		switch o.Kind {
		case runner.ObstaclePit:
			glyph = pitGlyph
		case runner.ObstacleEnemy:
			glyph = enemyGlyph
		}
		dst.DrawRect(v.rect(boxes.Obstacle(o)), glyph, core.ColorIndigo)
	}

	player := boxes.RunPlayer(runner.Player{Offset: snap.PlayerOffset})
	dst.DrawRect(v.rect(player), playerGlyph, core.ColorBrown)

	hud := fmt.Sprintf(" SCORE %d  DIST %d  SPEED %.1f  CACAO %d  BEST %d ",
		snap.Score, snap.Distance, snap.Speed, snap.Currency, snap.BestScore)
	dst.DrawTextColored(1, 0, hud, core.ColorGold)

	remaining := cfg.Progression.BossDistance - snap.Distance
	if remaining > 0 {
		boss := fmt.Sprintf(" BOSS IN %d ", remaining)
		dst.DrawTextColored(dst.Width()-len(boss)-1, 0, boss, core.ColorViolet)
	}
}

func drawArena(dst *core.Screen, snap runner.Snapshot, cfg config.RunnerConfig) {
	hb := cfg.Hitboxes
	boxes := runner.NewHitboxes(hb)
	v := newViewport(dst, hb.WorldWidth, hb.ArenaHeight)

	floor := hb.ArenaHeight - hb.BossPlayerAnchor + hb.BossPlayerSize
	dst.DrawHLine(0, v.row(floor), dst.Width(), groundGlyph, core.ColorBrown)

	bossBox := core.NewBox(snap.BossX, floor-bossSize, bossSize, bossSize)
	r := v.rect(bossBox)
	dst.DrawRect(r, bossGlyph, core.ColorIndigo)
	dst.DrawBox(r, core.ColorViolet)

	for _, a := range snap.Attacks {
		dst.DrawRect(v.rect(boxes.Attack(a)), attackGlyph, core.ColorViolet)
	}

	player := boxes.BossPlayer(runner.Player{Offset: snap.PlayerOffset})
	dst.DrawRect(v.rect(player), playerGlyph, core.ColorBrown)

	dst.DrawTextColored(1, 0, " BOSS "+healthBar(snap.BossHealth, cfg.Boss.Health, 20), core.ColorViolet)
	hearts := strings.Repeat("♥", snap.PlayerHealth) + strings.Repeat("♡", max(0, cfg.Boss.PlayerHealth-snap.PlayerHealth))
	status := fmt.Sprintf(" %s  SCORE %d ", hearts, snap.Score)
	dst.DrawTextColored(dst.Width()-len([]rune(status))-1, 0, status, core.ColorRed)
}

// healthBar renders a fixed-width bar for health out of total.
func healthBar(health, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := core.Clamp(health*width/total, 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %d", health)
}

// drawMessage draws a framed message in the middle of the screen.
func drawMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(boxW-len([]rune(l)))/2, box.Y+3+i, l, core.ColorWhite)
	}
}
