package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/scoreboard"
)

// NamePromptModel asks for the player's username before a session
// starts. Empty input falls through to the "guest" default.
type NamePromptModel struct {
	input    textinput.Model
	width    int
	height   int
	done     bool
	quitting bool
}

// NewNamePromptModel creates the username prompt.
func NewNamePromptModel(width, height int) NamePromptModel {
	ti := textinput.New()
	ti.Placeholder = "guest"
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	return NamePromptModel{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m NamePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NamePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NamePromptModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Who's playing?"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("Enter to confirm, Esc to quit"))

	return centerBlock(m.width, m.height, b.String())
}

// Username returns the normalized username the player entered.
func (m NamePromptModel) Username() string {
	return scoreboard.Normalize(m.input.Value())
}

// Quit reports whether the player bailed out of the prompt.
func (m NamePromptModel) Quit() bool {
	return m.quitting
}

// RunNamePrompt shows the username prompt and returns the normalized
// name. quit is true when the player cancelled instead of confirming.
func RunNamePrompt(width, height int) (username string, quit bool, err error) {
	p := tea.NewProgram(NewNamePromptModel(width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	model, ok := final.(NamePromptModel)
	if !ok {
		return scoreboard.Normalize(""), false, nil
	}
	return model.Username(), model.Quit(), nil
}
