package runner

import (
	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
	"github.com/pr-poehali-dev/dark-cacao-run/internal/core"
)

// Hitboxes maps entity state to collision boxes in world units.
type Hitboxes struct {
	cfg config.HitboxConfig
}

// NewHitboxes creates the box mapping for the given geometry.
func NewHitboxes(cfg config.HitboxConfig) Hitboxes {
	return Hitboxes{cfg: cfg}
}

// RunPlayer returns the player box while running. The lane top is the
// grounded player's top edge; jumping lifts the box by the offset.
func (h Hitboxes) RunPlayer(p Player) core.Box {
	size := h.cfg.RunPlayerSize
	return core.NewBox(h.cfg.PlayerX, h.cfg.RunLaneY-p.Offset, size, size)
}

// Obstacle returns the box of a ground obstacle.
func (h Hitboxes) Obstacle(o Obstacle) core.Box {
	size := h.cfg.ObstacleSize
	return core.NewBox(o.X, h.cfg.RunLaneY, size, size)
}

// BossPlayer returns the player box in the boss arena, anchored above the
// arena floor.
func (h Hitboxes) BossPlayer(p Player) core.Box {
	size := h.cfg.BossPlayerSize
	top := h.cfg.ArenaHeight - h.cfg.BossPlayerAnchor - p.Offset
	return core.NewBox(h.cfg.PlayerX, top, size, size)
}

// Attack returns the box of a boss projectile.
func (h Hitboxes) Attack(a Attack) core.Box {
	size := h.cfg.AttackSize
	return core.NewBox(a.X, a.Y, size, size)
}

// HitsObstacle reports whether the player overlaps any obstacle.
func (h Hitboxes) HitsObstacle(p Player, obstacles []Obstacle) bool {
	player := h.RunPlayer(p)
	for _, o := range obstacles {
		if player.Overlaps(h.Obstacle(o)) {
			return true
		}
	}
	return false
}

// ResolveAttacks removes every attack overlapping the player and returns
// the remaining attacks together with the number of hits.
func (h Hitboxes) ResolveAttacks(p Player, attacks []Attack) ([]Attack, int) {
	player := h.BossPlayer(p)
	kept := attacks[:0]
	hits := 0
	for _, a := range attacks {
		if player.Overlaps(h.Attack(a)) {
			hits++
			continue
		}
		kept = append(kept, a)
	}
	return kept, hits
}
