package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}

	def := DefaultRunnerConfig()
	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Spawner != def.Spawner {
		t.Errorf("spawner = %+v, expected %+v", cfg.Spawner, def.Spawner)
	}
	if cfg.Progression != def.Progression {
		t.Errorf("progression = %+v, expected %+v", cfg.Progression, def.Progression)
	}
	if cfg.Boss != def.Boss {
		t.Errorf("boss = %+v, expected %+v", cfg.Boss, def.Boss)
	}
	if cfg.Hitboxes != def.Hitboxes {
		t.Errorf("hitboxes = %+v, expected %+v", cfg.Hitboxes, def.Hitboxes)
	}
	if len(cfg.Shop.Items) != len(def.Shop.Items) {
		t.Fatalf("shop has %d items, expected %d", len(cfg.Shop.Items), len(def.Shop.Items))
	}
	for i := range def.Shop.Items {
		if cfg.Shop.Items[i] != def.Shop.Items[i] {
			t.Errorf("shop item %d = %+v, expected %+v", i, cfg.Shop.Items[i], def.Shop.Items[i])
		}
	}
}

func TestLoadRunnerCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	doc := "progression:\n  boss_distance: 600\nboss:\n  return_delay: 500ms\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Progression.BossDistance != 600 {
		t.Errorf("BossDistance = %d, expected 600", cfg.Progression.BossDistance)
	}
	if cfg.Boss.ReturnDelay != 500*time.Millisecond {
		t.Errorf("ReturnDelay = %v, expected 500ms", cfg.Boss.ReturnDelay)
	}
	// Untouched sections keep their defaults
	if cfg.Physics.JumpImpulse != 15 {
		t.Errorf("JumpImpulse = %v, expected default 15", cfg.Physics.JumpImpulse)
	}
	if cfg.Progression.StartSpeed != 5 {
		t.Errorf("StartSpeed = %v, expected default 5", cfg.Progression.StartSpeed)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(broken); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawner:\n  obstacle_chance: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(invalid)
	if err == nil || !strings.Contains(err.Error(), "obstacle_chance") {
		t.Errorf("out of range probability should be reported, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		field  string
	}{
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"negative attack chance", func(c *RunnerConfig) { c.Spawner.AttackChance = -0.1 }, "spawner.attack_chance"},
		{"inverted attack band", func(c *RunnerConfig) { c.Spawner.AttackMaxY = 10 }, "attack_max_y"},
		{"max below start speed", func(c *RunnerConfig) { c.Progression.MaxSpeed = 1 }, "max_speed"},
		{"zero smoothing", func(c *RunnerConfig) { c.Boss.Smoothing = 0 }, "boss.smoothing"},
		{"duplicate item", func(c *RunnerConfig) {
			c.Shop.Items = append(c.Shop.Items, c.Shop.Items[0])
		}, "duplicate"},
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}
