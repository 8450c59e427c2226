package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning. It mirrors the embedded
// defaults/runner.yaml and is used when that file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			JumpImpulse: 15,
			Gravity:     1,
		},
		Spawner: SpawnerConfig{
			ObstacleChance: 0.02,
			ObstacleSpawnX: 800,
			ObstacleCullX:  -100,
			AttackChance:   0.03,
			AttackSpeed:    8,
			AttackCullX:    -50,
			AttackOffsetX:  50,
			AttackMinY:     100,
			AttackMaxY:     500,
		},
		Progression: ProgressionConfig{
			StartSpeed:    5,
			MaxSpeed:      15,
			SpeedStep:     0.5,
			SpeedEvery:    500,
			CurrencyEvery: 100,
			BossDistance:  3000,
		},
		Boss: BossConfig{
			Health:           100,
			StartX:           600,
			BaseX:            600,
			Amplitude:        100,
			Smoothing:        0.05,
			Damage:           10,
			PlayerHealth:     3,
			WinScoreBonus:    1000,
			WinCurrencyBonus: 50,
			ReturnDelay:      3 * time.Second,
		},
		Hitboxes: HitboxConfig{
			PlayerX:          100,
			RunPlayerSize:    40,
			RunLaneY:         300,
			ObstacleSize:     40,
			BossPlayerSize:   64,
			ArenaHeight:      720,
			BossPlayerAnchor: 120,
			AttackSize:       32,
			WorldWidth:       800,
		},
		Shop: ShopConfig{
			CostGrowth: 1.5,
			Items: []ShopItem{
				{ID: "speed", Name: "Dark Cacao", Description: "Creeper", Cost: 13, MaxLevel: 5},
				{ID: "shield", Name: "Shield", Description: "Protection from obstacles", Cost: 50, MaxLevel: 3},
				{ID: "magnet", Name: "Magnet", Description: "Attracts coins", Cost: 100, MaxLevel: 3},
			},
		},
	}
}

// DefaultYAML returns the embedded default config document.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
