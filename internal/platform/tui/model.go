package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/game"
	"github.com/vovakirdan/tui-reflex/internal/history"
)

// SessionKeyMap defines the key bindings shown in the help footer.
type SessionKeyMap struct {
	Primary key.Binding
	Scores  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Scores},
		{k.Back, k.Quit},
	}
}

// DefaultSessionKeyMap returns default key bindings.
func DefaultSessionKeyMap() SessionKeyMap {
	return SessionKeyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/click", "react / start"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubble Tea model for a reflex session. It feeds semantic
// actions and ticks into the state machine and renders whatever state
// the session reports each frame.
type Model struct {
	session       *game.Session
	history       *history.Store
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	keys          SessionKeyMap
	help          help.Model
	board         table.Model
	lastState     game.State
	width         int
	height        int
	mouseX        int
	mouseY        int
	quitting      bool
	attemptLogged bool // history write done for the current result
}

const scoresButtonLabel = "[ Scores ]"

// scoresButtonZone returns the column range of the scores button on the
// idle screen's top bar (row 0).
func (m Model) scoresButtonZone() (x0, x1 int) {
	x1 = m.width - 2
	x0 = x1 - len(scoresButtonLabel)
	if x0 < 0 {
		x0 = 0
	}
	return x0, x1
}

// overScoresButton reports whether the pointer is on the scores button.
// Only meaningful on the idle screen, where the button is drawn.
func (m Model) overScoresButton(x, y int) bool {
	x0, x1 := m.scoresButtonZone()
	return y == 0 && x >= x0 && x < x1
}

// NewModel creates a session model. The history store may be nil; attempt
// logging is best-effort and never affects the round.
func NewModel(session *game.Session, hist *history.Store, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session:   session,
		history:   hist,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      DefaultSessionKeyMap(),
		help:      h,
		lastState: session.State(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keyMapper.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action != core.ActionNone {
			m.session.HandleAction(action)
			m.afterTransition()
		}
		return m, nil

	case tea.MouseMsg:
		m.mouseX, m.mouseY = msg.X, msg.Y
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			// On the idle screen a click on the scores button opens the
			// leaderboard; anywhere else it starts the round.
			if m.session.State() == game.StateIdle && m.overScoresButton(msg.X, msg.Y) {
				action = core.ActionScores
			}
			m.session.HandleAction(action)
			m.afterTransition()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.session.Tick()
		m.afterTransition()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// afterTransition reacts to state changes: logging the attempt once per
// completed round and building the board view on entering the
// leaderboard.
func (m *Model) afterTransition() {
	state := m.session.State()
	if state == m.lastState {
		return
	}
	m.lastState = state

	switch state {
	case game.StateResult:
		if !m.attemptLogged && m.history != nil && m.session.Outcome() != game.OutcomeNone {
			millis := int(math.Round(m.session.ReactionSeconds() * 1000))
			//nolint:errcheck // Best-effort log, round result stands regardless
			m.history.SaveAttempt(m.session.Username(), millis)
		}
		m.attemptLogged = true

	case game.StateLeaderboard:
		m.board = newLeaderboardTable(m.session.Top(), len(m.session.Top())+1)

	default:
		m.attemptLogged = false
	}
}

// View renders the current session state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(stateHeading(m.session.State()))
	b.WriteString("\n\n")

	switch m.session.State() {
	case game.StateIdle:
		b.WriteString(subtitleStyle.Render("Test your reflexes"))
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("Press space (or click) to start a round"))
		if msg := m.session.Message(); msg != "" {
			b.WriteString("\n\n")
			b.WriteString(m.outcomeStyle().Render(msg))
		}

	case game.StateCountdown:
		b.WriteString(faintStyle.Render("Hit nothing until the screen says GO"))

	case game.StateArmed:
		b.WriteString(subtitleStyle.Render("Press NOW"))

	case game.StateResult:
		b.WriteString(resultStyle.Render(fmt.Sprintf("%.3f seconds", m.session.ReactionSeconds())))
		b.WriteString("\n\n")
		b.WriteString(m.outcomeStyle().Render(m.session.Message()))
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("Press space to play again"))

	case game.StateLeaderboard:
		b.WriteString(m.board.View())
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("Press space to go back"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	if m.session.State() == game.StateIdle {
		// The idle screen carries a top bar with the player name and the
		// clickable scores button.
		return m.topBar() + "\n" + centerBlock(m.width, m.height-1, b.String())
	}
	return centerBlock(m.width, m.height, b.String())
}

// topBar renders the idle screen's header row: player identity on the
// left, the scores button on the right, highlighted on hover.
func (m Model) topBar() string {
	left := faintStyle.Render(fmt.Sprintf(" Player: %s", m.session.Username()))

	button := buttonStyle
	if m.overScoresButton(m.mouseX, m.mouseY) {
		button = buttonHoverStyle
	}
	right := button.Render(scoresButtonLabel)

	gap := m.width - lipgloss.Width(left) - len(scoresButtonLabel) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// outcomeStyle picks the message style for the last round's outcome.
func (m Model) outcomeStyle() lipgloss.Style {
	if m.session.Outcome() == game.OutcomeFailed {
		return errorStyle
	}
	return messageStyle
}

// Run starts the Bubble Tea program for a session.
func Run(session *game.Session, hist *history.Store, cfg core.RuntimeConfig) error {
	model := NewModel(session, hist, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // left click is the primary action
	)

	_, err := p.Run()
	return err
}
