package config

import (
	_ "embed"
)

//go:embed defaults/reflex.yaml
var defaultReflexYAML []byte

// Default returns the default reflex configuration.
func Default() Config {
	return Config{
		Countdown: CountdownConfig{
			MinSeconds: 3,
			MaxSeconds: 7,
		},
		Leaderboard: LeaderboardConfig{
			Size: 5,
		},
		Storage: StorageConfig{
			ScoresPath:  "~/.reflex/scores.json",
			HistoryPath: "~/.reflex/history.db",
		},
		TickRate: 60,
	}
}
