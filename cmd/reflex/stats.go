package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/history"
	"github.com/vovakirdan/tui-reflex/internal/scoreboard"
)

var statsCmd = &cobra.Command{
	Use:   "stats [user]",
	Short: "Show attempt statistics",
	Long: `Display attempt statistics from the local history database.

With a username, shows that player's aggregates and recent attempts;
without one, shows a summary for every recorded player.

Examples:
  reflex stats
  reflex stats alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := history.Open(historyPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		printPlayerStats(store, scoreboard.Normalize(args[0]))
		return
	}
	printAllStats(store)
}

func printPlayerStats(store *history.Store, username string) {
	stats, err := store.Stats(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stats - %s\n", username)
	fmt.Println()

	if stats.Attempts == 0 {
		fmt.Println("No attempts recorded yet.")
		return
	}

	fmt.Printf("  Attempts:  %d\n", stats.Attempts)
	fmt.Printf("  Best:      %d ms\n", stats.BestMillis)
	fmt.Printf("  Average:   %.0f ms\n", stats.AvgMillis)
	if !stats.LastAttempt.IsZero() {
		fmt.Printf("  Last:      %s\n", stats.LastAttempt.Format("2006-01-02 15:04"))
	}

	attempts, err := store.RecentAttempts(username, 10)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Println("Recent attempts:")
	for _, a := range attempts {
		fmt.Printf("  %4d ms  %s\n", a.Millis, a.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printAllStats(store *history.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No attempts recorded yet.")
		return
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Attempt Statistics")
	fmt.Println()
	fmt.Printf("  %-18s  %-9s  %-9s  %s\n", "Player", "Attempts", "Best", "Average")
	fmt.Printf("  %-18s  %-9s  %-9s  %s\n", "------", "--------", "----", "-------")

	for _, name := range names {
		s := all[name]
		fmt.Printf("  %-18s  %-9d  %-6d ms  %.0f ms\n",
			s.Username, s.Attempts, s.BestMillis, s.AvgMillis)
	}
}
