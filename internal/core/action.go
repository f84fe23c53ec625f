// Package core provides shared runtime types for the reflex platform:
// semantic input actions, the session clock, and runtime configuration.
// It contains no Bubble Tea dependencies; the platform layer maps raw
// terminal input onto these types.
package core

// Action represents a semantic input action, abstracted from physical
// key presses and mouse buttons. The session state machine consumes
// high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space, Enter, left click - the reaction trigger
	ActionScores         // S, Tab - open the leaderboard from the idle screen
	ActionBack           // B, Escape - dismiss a screen
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
