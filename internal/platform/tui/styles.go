package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/game"
)

// Per-state color palettes, echoing the classic reaction-test scheme:
// calm blue while idle, muted gray while waiting, alarm red on the
// stimulus, green for the result.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Bold(true)

	countdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	armedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("160")).
			Bold(true).
			Padding(1, 6)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238"))

	buttonHoverStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Background(lipgloss.Color("255")).
				Bold(true)
)

// stateHeading returns the styled banner line for a session state.
func stateHeading(s game.State) string {
	switch s {
	case game.StateIdle:
		return idleStyle.Render("R E F L E X")
	case game.StateCountdown:
		return countdownStyle.Render("Wait for it...")
	case game.StateArmed:
		return armedStyle.Render("GO!")
	case game.StateResult:
		return resultStyle.Render("Your reaction time")
	case game.StateLeaderboard:
		return titleStyle.Render("TOP PLAYERS")
	default:
		return ""
	}
}

// centerBlock centers a block of text in the given viewport.
func centerBlock(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
