package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/scoreboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best-time leaderboard",
	Long: `Display the top players ranked by best reaction time.

Examples:
  reflex scores
  reflex scores --db ./scores.json`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := scoreboard.Open(scoresPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scoreboard: %v\n", err)
		os.Exit(1)
	}

	size := cfg.Leaderboard.Size
	if size <= 0 {
		size = config.Default().Leaderboard.Size
	}
	top := store.Top(size)

	fmt.Println("Best Reaction Times")
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-18s  %s\n", "Rank", "Player", "Best")
	fmt.Printf("  %-4s  %-18s  %s\n", "----", "------", "----")

	for i, entry := range top {
		best := fmt.Sprintf("%.3f s", entry.Score)
		if entry.Placeholder {
			best = "0 s"
		}
		fmt.Printf("  %-4d  %-18s  %s\n", i+1, entry.Name, best)
	}

	fmt.Println()
	fmt.Println("Play 'reflex play' to claim a spot.")
}
