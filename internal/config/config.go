// Package config provides YAML-based configuration loading for the runner
// simulation, the linear speed ramp and hot reloading of config files.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains every tunable of the simulation engine.
type RunnerConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Progression ProgressionConfig `yaml:"progression"`
	Boss        BossConfig        `yaml:"boss"`
	Hitboxes    HitboxConfig      `yaml:"hitboxes"`
	Shop        ShopConfig        `yaml:"shop"`
}

// PhysicsConfig defines the vertical integrator for the player.
type PhysicsConfig struct {
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward velocity set by a jump
	Gravity     float64 `yaml:"gravity"`      // Velocity lost per tick while airborne
}

// SpawnerConfig defines hazard spawning, movement and culling.
type SpawnerConfig struct {
	ObstacleChance float64 `yaml:"obstacle_chance"`  // Per-tick spawn probability while running
	ObstacleSpawnX float64 `yaml:"obstacle_spawn_x"` // Spawn position ahead of the visible area
	ObstacleCullX  float64 `yaml:"obstacle_cull_x"`  // Obstacles left of this are discarded
	AttackChance   float64 `yaml:"attack_chance"`    // Per-tick spawn probability in the boss fight
	AttackSpeed    float64 `yaml:"attack_speed"`     // Units per tick, independent of run speed
	AttackCullX    float64 `yaml:"attack_cull_x"`    // Attacks left of this are discarded
	AttackOffsetX  float64 `yaml:"attack_offset_x"`  // Attacks spawn this far left of the boss
	AttackMinY     float64 `yaml:"attack_min_y"`     // Vertical band for attack spawns [min, max)
	AttackMaxY     float64 `yaml:"attack_max_y"`
}

// ProgressionConfig defines the ledger thresholds.
type ProgressionConfig struct {
	StartSpeed    float64 `yaml:"start_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpeedStep     float64 `yaml:"speed_step"`
	SpeedEvery    int     `yaml:"speed_every"`    // Distance between speed increases
	CurrencyEvery int     `yaml:"currency_every"` // Distance between currency ticks
	BossDistance  int     `yaml:"boss_distance"`  // Distance that triggers the boss fight
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	Health           int           `yaml:"health"`
	StartX           float64       `yaml:"start_x"`
	BaseX            float64       `yaml:"base_x"`
	Amplitude        float64       `yaml:"amplitude"`
	Smoothing        float64       `yaml:"smoothing"`
	Damage           int           `yaml:"damage"` // Health removed per attack signal
	PlayerHealth     int           `yaml:"player_health"`
	WinScoreBonus    int           `yaml:"win_score_bonus"`
	WinCurrencyBonus int           `yaml:"win_currency_bonus"`
	ReturnDelay      time.Duration `yaml:"return_delay"` // Victory screen time before the menu
}

// HitboxConfig defines the collision boxes in world units.
type HitboxConfig struct {
	PlayerX          float64 `yaml:"player_x"`
	RunPlayerSize    float64 `yaml:"run_player_size"`
	RunLaneY         float64 `yaml:"run_lane_y"` // Top of the obstacle lane
	ObstacleSize     float64 `yaml:"obstacle_size"`
	BossPlayerSize   float64 `yaml:"boss_player_size"`
	ArenaHeight      float64 `yaml:"arena_height"`
	BossPlayerAnchor float64 `yaml:"boss_player_anchor"` // Distance of the grounded player top from the arena bottom
	AttackSize       float64 `yaml:"attack_size"`
	WorldWidth       float64 `yaml:"world_width"`
}

// ShopConfig defines the power-up catalog.
type ShopConfig struct {
	CostGrowth float64    `yaml:"cost_growth"` // Cost multiplier applied after each upgrade
	Items      []ShopItem `yaml:"items"`
}

// ShopItem is a catalog entry.
type ShopItem struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cost        int    `yaml:"cost"`
	MaxLevel    int    `yaml:"max_level"`
}

// Ramp returns the speed ramp described by the progression section.
func (c RunnerConfig) Ramp() SpeedRamp {
	return SpeedRamp{
		Start: c.Progression.StartSpeed,
		Max:   c.Progression.MaxSpeed,
		Step:  c.Progression.SpeedStep,
		Every: c.Progression.SpeedEvery,
	}
}

// Validate reports values the engine cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	probability := func(name string, p float64) {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, p))
		}
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.jump_impulse", c.Physics.JumpImpulse)
	positive("physics.gravity", c.Physics.Gravity)
	probability("spawner.obstacle_chance", c.Spawner.ObstacleChance)
	probability("spawner.attack_chance", c.Spawner.AttackChance)
	positive("spawner.attack_speed", c.Spawner.AttackSpeed)
	if c.Spawner.AttackMaxY < c.Spawner.AttackMinY {
		errs = append(errs, errors.New("spawner.attack_max_y must not be below attack_min_y"))
	}
	positive("progression.start_speed", c.Progression.StartSpeed)
	if c.Progression.MaxSpeed < c.Progression.StartSpeed {
		errs = append(errs, errors.New("progression.max_speed must not be below start_speed"))
	}
	positive("progression.speed_every", float64(c.Progression.SpeedEvery))
	positive("progression.currency_every", float64(c.Progression.CurrencyEvery))
	positive("progression.boss_distance", float64(c.Progression.BossDistance))
	positive("boss.health", float64(c.Boss.Health))
	positive("boss.damage", float64(c.Boss.Damage))
	positive("boss.player_health", float64(c.Boss.PlayerHealth))
	if c.Boss.Smoothing <= 0 || c.Boss.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("boss.smoothing must be within (0, 1], got %v", c.Boss.Smoothing))
	}
	if c.Boss.ReturnDelay < 0 {
		errs = append(errs, errors.New("boss.return_delay must not be negative"))
	}

	seen := make(map[string]bool, len(c.Shop.Items))
	for _, item := range c.Shop.Items {
		if item.ID == "" {
			errs = append(errs, errors.New("shop item without id"))
			continue
		}
		if seen[item.ID] {
			errs = append(errs, fmt.Errorf("duplicate shop item %q", item.ID))
		}
		seen[item.ID] = true
		if item.Cost < 0 || item.MaxLevel < 0 {
			errs = append(errs, fmt.Errorf("shop item %q has negative cost or max level", item.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
