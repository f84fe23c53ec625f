package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/scoreboard"
)

// newLeaderboardTable builds the top-N table view from scoreboard rows.
func newLeaderboardTable(entries []scoreboard.Entry, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 18},
		{Title: "Best", Width: 12},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			formatScore(e),
		}
	}

	if height < len(rows)+2 {
		height = len(rows) + 2
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle() // static board, no row cursor
	t.SetStyles(s)

	return t
}

// formatScore renders a leaderboard score. Placeholder rows show a bare
// zero so the display signals "no data"; everything else gets millisecond
// precision.
func formatScore(e scoreboard.Entry) string {
	if e.Placeholder {
		return "0 s"
	}
	return fmt.Sprintf("%.3f s", e.Score)
}
