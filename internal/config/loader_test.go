package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path, no user config, and no local configs, the
	// embedded default document applies.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Countdown.MinSeconds <= 0 || cfg.Countdown.MaxSeconds < cfg.Countdown.MinSeconds {
		t.Errorf("Invalid default countdown window: %+v", cfg.Countdown)
	}
	if cfg.Leaderboard.Size != 5 {
		t.Errorf("Expected default leaderboard size 5, got %d", cfg.Leaderboard.Size)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
countdown:
  min_seconds: 1.5
  max_seconds: 2.5
leaderboard:
  size: 3
tick_rate: 30
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Countdown.MinSeconds != 1.5 || cfg.Countdown.MaxSeconds != 2.5 {
		t.Errorf("Custom countdown not applied: %+v", cfg.Countdown)
	}
	if cfg.Leaderboard.Size != 3 {
		t.Errorf("Custom leaderboard size not applied: %d", cfg.Leaderboard.Size)
	}

	gameCfg := cfg.GameConfig()
	if gameCfg.MinDelay != 1500*time.Millisecond || gameCfg.MaxDelay != 2500*time.Millisecond {
		t.Errorf("GameConfig conversion wrong: %+v", gameCfg)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestGameConfigRejectsInvalidWindow(t *testing.T) {
	cfg := Config{
		Countdown: CountdownConfig{MinSeconds: 5, MaxSeconds: 2},
	}
	gameCfg := cfg.GameConfig()
	if gameCfg.MinDelay != 3*time.Second || gameCfg.MaxDelay != 7*time.Second {
		t.Errorf("Inverted window should fall back to defaults, got %+v", gameCfg)
	}
}
