package runner

import (
	"reflect"
	"testing"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/config"
)

func TestAdvanceObstaclesMovesAndCulls(t *testing.T) {
	s := NewSpawner(1, quietConfig().Spawner)

	obstacles := []Obstacle{
		{ID: 1, X: 400},
		{ID: 2, X: -90}, // -95 after the move, still kept
		{ID: 3, X: -98}, // -103, culled
		{ID: 4, X: -95}, // exactly -100, kept
	}
	got := s.AdvanceObstacles(obstacles, 5)

	want := []Obstacle{
		{ID: 1, X: 395},
		{ID: 2, X: -95},
		{ID: 4, X: -100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AdvanceObstacles() = %+v, expected %+v", got, want)
	}
}

func TestAdvanceObstaclesSpawnsAtSpawnX(t *testing.T) {
	cfg := quietConfig().Spawner
	cfg.ObstacleChance = 1
	s := NewSpawner(1, cfg)

	var obstacles []Obstacle
	obstacles = s.AdvanceObstacles(obstacles, 5)
	obstacles = s.AdvanceObstacles(obstacles, 5)

	if len(obstacles) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(obstacles))
	}
	if obstacles[0].X != 795 || obstacles[1].X != 800 {
		t.Errorf("unexpected positions %v and %v", obstacles[0].X, obstacles[1].X)
	}
	if obstacles[1].ID <= obstacles[0].ID {
		t.Errorf("ids should grow, got %d then %d", obstacles[0].ID, obstacles[1].ID)
	}
}

func TestAdvanceAttacks(t *testing.T) {
	cfg := quietConfig().Spawner
	cfg.AttackChance = 1
	s := NewSpawner(3, cfg)

	attacks := []Attack{
		{ID: 100, X: 200, Y: 150},
		{ID: 101, X: -40, Y: 150}, // -48, kept
		{ID: 102, X: -43, Y: 150}, // -51, culled
	}
	attacks = s.AdvanceAttacks(attacks, 600)

	if len(attacks) != 3 {
		t.Fatalf("expected 3 attacks, got %d: %+v", len(attacks), attacks)
	}
	if attacks[0].X != 192 || attacks[1].X != -48 {
		t.Errorf("attacks should move 8 units per tick, got %+v", attacks[:2])
	}

	spawned := attacks[2]
	if spawned.X != 550 {
		t.Errorf("attack should spawn 50 units in front of the boss, got x=%v", spawned.X)
	}
	if spawned.Y < cfg.AttackMinY || spawned.Y >= cfg.AttackMaxY {
		t.Errorf("attack y %v outside [%v, %v)", spawned.Y, cfg.AttackMinY, cfg.AttackMaxY)
	}
}

func TestSpawnerAttackBand(t *testing.T) {
	cfg := quietConfig().Spawner
	cfg.AttackChance = 1
	s := NewSpawner(99, cfg)

	var attacks []Attack
	for range 500 {
		attacks = s.AdvanceAttacks(attacks[:0], 600)
		y := attacks[len(attacks)-1].Y
		if y < cfg.AttackMinY || y >= cfg.AttackMaxY {
			t.Fatalf("attack y %v outside [%v, %v)", y, cfg.AttackMinY, cfg.AttackMaxY)
		}
	}
}

func TestSpawnRate(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	s := NewSpawner(2024, cfg)

	const trials = 100000
	var obstacles []Obstacle
	for range trials {
		obstacles = s.AdvanceObstacles(obstacles[:0], 0)
	}

	// Expected 2000 spawns; the bound is about ten standard deviations.
	if s.nextID < 1550 || s.nextID > 2450 {
		t.Errorf("spawned %d obstacles in %d trials, expected about %d",
			s.nextID, trials, int(cfg.ObstacleChance*trials))
	}
}

func TestSpawnedObstacleKinds(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	cfg.ObstacleChance = 1
	s := NewSpawner(7, cfg)

	const trials = 3000
	counts := make(map[ObstacleKind]int)
	var obstacles []Obstacle
	for range trials {
		obstacles = s.AdvanceObstacles(obstacles[:0], 0)
		if len(obstacles) != 1 {
			t.Fatalf("expected one spawn per tick, got %d", len(obstacles))
		}
		counts[obstacles[0].Kind]++
	}

	kinds := []ObstacleKind{ObstacleSpike, ObstaclePit, ObstacleEnemy}
	if len(counts) != len(kinds) {
		t.Fatalf("kinds seen = %v, expected %v", counts, kinds)
	}
	// Expected 1000 each; the bound is about eight standard deviations.
	for _, k := range kinds {
		if n := counts[k]; n < 800 || n > 1200 {
			t.Errorf("%s spawned %d times in %d, expected about %d", k, n, trials, trials/len(kinds))
		}
	}
}

func TestObstacleKindString(t *testing.T) {
	tests := map[ObstacleKind]string{
		ObstacleSpike:    "spike",
		ObstaclePit:      "pit",
		ObstacleEnemy:    "enemy",
		ObstacleKind(42): "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("ObstacleKind(%d).String() = %q, expected %q", int(k), got, want)
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawner
	cfg.ObstacleChance = 0.3
	a := NewSpawner(42, cfg)
	b := NewSpawner(42, cfg)

	var oa, ob []Obstacle
	for range 200 {
		oa = a.AdvanceObstacles(oa, 5)
		ob = b.AdvanceObstacles(ob, 5)
	}

	if !reflect.DeepEqual(oa, ob) {
		t.Error("same seed should produce the same obstacles")
	}
}
