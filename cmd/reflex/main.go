// reflex is a terminal reaction-time trainer.
//
// Usage:
//
//	reflex play              - Play reaction rounds interactively
//	reflex scores            - Show the best-time leaderboard
//	reflex stats [user]      - Show attempt statistics
//	reflex serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Custom YAML config
//	--db <path>     - Scoreboard JSON path (default: ~/.reflex/scores.json)
//	--history <path>- Attempt history database (default: ~/.reflex/history.db)
//	--fps <rate>    - UI tick rate (default: 60)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagHistory string
	flagFPS     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reflex",
	Short: "Reflex - Test your reaction time in the terminal",
	Long: `Reflex is a terminal reaction-time trainer. A round waits a random
3-7 seconds, then flips to GO - hit space (or click) as fast as you can.
Best times persist per player on a shared leaderboard.

Available commands:
  play     - Play reaction rounds interactively
  scores   - Show the best-time leaderboard
  stats    - Show attempt statistics
  serve    - Start SSH server for remote play

Examples:
  reflex play
  reflex play --user alice
  reflex scores
  reflex stats alice
  reflex serve --ssh :23235`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scoreboard JSON (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagHistory, "history", "", "Path to attempt history database (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "UI tick rate (frames per second)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
