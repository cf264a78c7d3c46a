package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/reef-dash/constants"
	"github.com/lixenwraith/reef-dash/engine"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(mapLookup(nil))
	if err != nil {
		t.Fatalf("FromLookup: %v", err)
	}

	if cfg.Debug {
		t.Error("Expected debug off by default")
	}
	if !cfg.Audio {
		t.Error("Expected audio on by default")
	}
	if cfg.Leaderboard != BackendFile {
		t.Errorf("Expected file backend, got %s", cfg.Leaderboard)
	}
	if cfg.LeaderboardTop != constants.LeaderboardSize {
		t.Errorf("Expected top %d, got %d", constants.LeaderboardSize, cfg.LeaderboardTop)
	}
	if cfg.HoldWindow != constants.KeyHoldWindow {
		t.Errorf("Expected hold window %v, got %v", constants.KeyHoldWindow, cfg.HoldWindow)
	}
	def := engine.DefaultTuning()
	if cfg.Tuning.StartingLives != def.StartingLives || cfg.Tuning.LevelInterval != def.LevelInterval {
		t.Error("Expected default tuning")
	}
}

func TestOverrides(t *testing.T) {
	cfg, err := FromLookup(mapLookup(map[string]string{
		"REEF_DEBUG":                "true",
		"REEF_SEED":                 "1234",
		"REEF_AUDIO":                "0",
		"REEF_LEADERBOARD":          "Memory",
		"REEF_LEADERBOARD_TOP":      "10",
		"REEF_HOLD_WINDOW":          "250ms",
		"REEF_STARTING_LIVES":       "5",
		"REEF_LEVEL_INTERVAL":       "45s",
		"REEF_OBSTACLE_INTERVAL":    "800",
		"REEF_COLLECTIBLE_INTERVAL": "2s",
		"REEF_MIN_SPAWN_INTERVAL":   "200ms",
		"REEF_SCROLL_SPEED":         "22.5",
		"REEF_PLAYER_SPEED":         "16",
	}))
	if err != nil {
		t.Fatalf("FromLookup: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"debug", cfg.Debug, true},
		{"seed", cfg.Seed, int64(1234)},
		{"audio", cfg.Audio, false},
		{"backend", cfg.Leaderboard, BackendMemory},
		{"top", cfg.LeaderboardTop, 10},
		{"hold", cfg.HoldWindow, 250 * time.Millisecond},
		{"lives", cfg.Tuning.StartingLives, 5},
		{"level interval", cfg.Tuning.LevelInterval, 45 * time.Second},
		{"obstacle interval ms", cfg.Tuning.ObstacleInterval, 800 * time.Millisecond},
		{"collectible interval", cfg.Tuning.CollectibleInterval, 2 * time.Second},
		{"min spawn", cfg.Tuning.MinSpawnInterval, 200 * time.Millisecond},
		{"scroll speed", cfg.Tuning.ScrollSpeed, 22.5},
		{"player speed", cfg.Tuning.PlayerSpeed, 16.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad bool", map[string]string{"REEF_DEBUG": "maybe"}},
		{"bad int", map[string]string{"REEF_STARTING_LIVES": "three"}},
		{"zero lives", map[string]string{"REEF_STARTING_LIVES": "0"}},
		{"bad duration", map[string]string{"REEF_LEVEL_INTERVAL": "soon"}},
		{"unknown backend", map[string]string{"REEF_LEADERBOARD": "redis"}},
		{"postgres without url", map[string]string{"REEF_LEADERBOARD": "postgres"}},
		{"zero top", map[string]string{"REEF_LEADERBOARD_TOP": "0"}},
		{"interval below floor", map[string]string{"REEF_OBSTACLE_INTERVAL": "100ms"}},
		{"negative speed", map[string]string{"REEF_SCROLL_SPEED": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(mapLookup(tt.env))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestTuningErrorsKeepCause(t *testing.T) {
	_, err := FromLookup(mapLookup(map[string]string{"REEF_STARTING_LIVES": "0"}))
	if !errors.Is(err, engine.ErrInvalidTuning) {
		t.Errorf("Expected wrapped ErrInvalidTuning, got %v", err)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("REEF_SEED=77\nREEF_LEADERBOARD=memory\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	// godotenv never overrides variables already set; make sure these are unset
	t.Setenv("REEF_SEED", "")
	os.Unsetenv("REEF_SEED")
	t.Setenv("REEF_LEADERBOARD", "")
	os.Unsetenv("REEF_LEADERBOARD")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 77 {
		t.Errorf("Expected seed 77 from .env, got %d", cfg.Seed)
	}
	if cfg.Leaderboard != BackendMemory {
		t.Errorf("Expected memory backend from .env, got %s", cfg.Leaderboard)
	}
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load(); err != nil {
		t.Errorf("Expected missing .env to be ignored, got %v", err)
	}
}
