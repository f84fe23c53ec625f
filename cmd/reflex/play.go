package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/game"
	"github.com/vovakirdan/tui-reflex/internal/history"
	"github.com/vovakirdan/tui-reflex/internal/platform/tui"
	"github.com/vovakirdan/tui-reflex/internal/scoreboard"
)

var flagUser string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play reaction rounds",
	Long: `Start an interactive reaction-time session.

A round begins on the primary action (space, enter, or a left click).
After a random 3-7 second wait the screen flips to GO; react as fast
as you can. A click before GO is ignored - no cheating the countdown.

Controls:
  Space/Enter/Click - Start round / react / dismiss result
  S/Tab             - Leaderboard (from the start screen)
  Q/Ctrl+C          - Quit

Examples:
  reflex play
  reflex play --user alice
  reflex play --config ./my-reflex.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUser, "user", "", "Player name (skips the prompt)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
		Seed:     time.Now().UnixNano(),
	}

	// Resolve the player name: flag first, prompt otherwise
	username := scoreboard.Normalize(flagUser)
	if flagUser == "" {
		name, quit, promptErr := tui.RunNamePrompt(width, height)
		if promptErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", promptErr)
			os.Exit(1)
		}
		if quit {
			return
		}
		username = name
	}

	scores, err := scoreboard.Open(scoresPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scoreboard: %v\n", err)
		os.Exit(1)
	}

	// Open attempt history
	hist, err := history.Open(historyPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without history - the game still works
		hist = nil
	}

	session := game.New(
		username,
		scores,
		core.SystemClock{},
		rand.New(rand.NewSource(runtime.Seed)),
		cfg.GameConfig(),
	)

	runErr := tui.Run(session, hist, runtime)

	if hist != nil {
		hist.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}

// scoresPath resolves the scoreboard location: flag beats config.
func scoresPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if cfg.Storage.ScoresPath != "" {
		return cfg.Storage.ScoresPath
	}
	return config.Default().Storage.ScoresPath
}

// historyPath resolves the history database location: flag beats config.
func historyPath(cfg config.Config) string {
	if flagHistory != "" {
		return flagHistory
	}
	if cfg.Storage.HistoryPath != "" {
		return cfg.Storage.HistoryPath
	}
	return config.Default().Storage.HistoryPath
}

// tickRate resolves the UI tick rate: an explicit flag beats config.
func tickRate(cfg config.Config) int {
	rate := cfg.TickRate
	if rootCmd.PersistentFlags().Changed("fps") || rate <= 0 {
		rate = flagFPS
	}
	if rate <= 0 {
		rate = 60
	}
	return rate
}
