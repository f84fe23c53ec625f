package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{" ", core.ActionPrimary, false},
		{"enter", core.ActionPrimary, false},
		{"s", core.ActionScores, false},
		{"tab", core.ActionScores, false},
		{"b", core.ActionBack, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range cases {
		var msg tea.KeyMsg
		switch tc.key {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
		}

		action, quit := km.MapKey(msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tc.key, action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapMouseOnlyLeftPress(t *testing.T) {
	km := NewKeyMapper()

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if km.MapMouse(press) != core.ActionPrimary {
		t.Error("Left press should map to ActionPrimary")
	}

	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.MapMouse(release) != core.ActionNone {
		t.Error("Release should not trigger the primary action")
	}

	motion := tea.MouseMsg{Action: tea.MouseActionMotion}
	if km.MapMouse(motion) != core.ActionNone {
		t.Error("Motion should not trigger the primary action")
	}

	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouse(right) != core.ActionNone {
		t.Error("Right press should not trigger the primary action")
	}
}
