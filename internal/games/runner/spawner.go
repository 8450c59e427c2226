package runner

import (
	"math/rand"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
)

// ObstacleKind selects the cosmetic variant of an obstacle.
// Collision ignores it; all obstacles share one hitbox.
type ObstacleKind int

const (
	ObstacleSpike ObstacleKind = iota
	ObstaclePit
	ObstacleEnemy

	obstacleKinds = 3
)

// String returns the variant name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSpike:
		return "spike"
	case ObstaclePit:
		return "pit"
	case ObstacleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Obstacle is a ground hazard scrolling toward the player during a run.
type Obstacle struct {
	ID   int64
	X    float64 // Left edge in world units
	Kind ObstacleKind
}

// Attack is a projectile the boss fires toward the player.
type Attack struct {
	ID int64
	X  float64
	Y  float64 // Top edge in world units, y grows downward
}

// Spawner creates, moves and culls hazards. It owns the engine's random
// source and the id counter, so a fixed seed replays the same hazards.
type Spawner struct {
	rng    *rand.Rand
	nextID int64
	cfg    config.SpawnerConfig
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(seed int64, cfg config.SpawnerConfig) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// UpdateConfig replaces the spawn tuning. The random source is kept.
func (s *Spawner) UpdateConfig(cfg config.SpawnerConfig) {
	s.cfg = cfg
}

func (s *Spawner) newID() int64 {
	s.nextID++
	return s.nextID
}

// AdvanceObstacles moves every obstacle left by speed, drops the ones past
// the cull bound and, with the configured probability, appends a new one
// at the spawn position. The slice is reused.
func (s *Spawner) AdvanceObstacles(obstacles []Obstacle, speed float64) []Obstacle {
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= speed
		if o.X < s.cfg.ObstacleCullX {
			continue
		}
		kept = append(kept, o)
	}

	if s.rng.Float64() < s.cfg.ObstacleChance {
		kept = append(kept, Obstacle{
			ID:   s.newID(),
			X:    s.cfg.ObstacleSpawnX,
			Kind: ObstacleKind(s.rng.Intn(obstacleKinds)),
		})
	}
	return kept
}

// AdvanceAttacks moves every attack left at the fixed attack speed, drops
// the ones past the cull bound and may fire a new one from just in front of
// the boss at a random height.
func (s *Spawner) AdvanceAttacks(attacks []Attack, bossX float64) []Attack {
	kept := attacks[:0]
	for _, a := range attacks {
		a.X -= s.cfg.AttackSpeed
		if a.X < s.cfg.AttackCullX {
			continue
		}
		kept = append(kept, a)
	}

	if s.rng.Float64() < s.cfg.AttackChance {
		band := s.cfg.AttackMaxY - s.cfg.AttackMinY
		kept = append(kept, Attack{
			ID: s.newID(),
			X:  bossX - s.cfg.AttackOffsetX,
			Y:  s.cfg.AttackMinY + s.rng.Float64()*band,
		})
	}
	return kept
}
