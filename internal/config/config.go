// Package config provides YAML-based configuration loading for the
// reflex platform.
package config

import (
	"time"

	"github.com/vovakirdan/tui-reflex/internal/game"
)

// Config contains all configuration for the reflex trainer.
type Config struct {
	Countdown   CountdownConfig   `yaml:"countdown"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Storage     StorageConfig     `yaml:"storage"`
	TickRate    int               `yaml:"tick_rate"`
}

// CountdownConfig defines the random delay window before the stimulus.
type CountdownConfig struct {
	MinSeconds float64 `yaml:"min_seconds"`
	MaxSeconds float64 `yaml:"max_seconds"`
}

// LeaderboardConfig defines the ranking display.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// StorageConfig defines persistence locations.
type StorageConfig struct {
	ScoresPath  string `yaml:"scores_path"`
	HistoryPath string `yaml:"history_path"`
}

// GameConfig converts the loaded document into session tunables.
func (c Config) GameConfig() game.Config {
	cfg := game.Config{
		MinDelay: time.Duration(c.Countdown.MinSeconds * float64(time.Second)),
		MaxDelay: time.Duration(c.Countdown.MaxSeconds * float64(time.Second)),
		TopSize:  c.Leaderboard.Size,
	}
	if cfg.MinDelay <= 0 || cfg.MaxDelay < cfg.MinDelay {
		def := game.DefaultConfig()
		cfg.MinDelay = def.MinDelay
		cfg.MaxDelay = def.MaxDelay
	}
	return cfg
}
