// Package game implements the reaction-time session state machine. It
// drives the stimulus-response sequence and computes reaction samples;
// rendering and raw input live in the platform layer.
package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/scoreboard"
)

// State identifies the current phase of the session.
type State int

const (
	StateIdle        State = iota // start prompt, leaderboard entry available
	StateCountdown                // random delay running, input ignored
	StateArmed                    // stimulus shown, waiting for the reaction
	StateResult                   // reaction time and outcome on display
	StateLeaderboard              // top-N board on display
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCountdown:
		return "Countdown"
	case StateArmed:
		return "Armed"
	case StateResult:
		return "Result"
	case StateLeaderboard:
		return "Leaderboard"
	default:
		return "Unknown"
	}
}

// Outcome classifies the result of a completed round. It backs the
// display message so callers can branch on structure, not text.
type Outcome int

const (
	OutcomeNone        Outcome = iota
	OutcomeImproved            // new personal best recorded
	OutcomeNotImproved         // round completed, stored best stands
	OutcomeFailed              // scoreboard update failed, round still completed
)

// ScoreStore is the narrow persistence surface the session needs.
type ScoreStore interface {
	RegisterOrGet(name string) (scoreboard.Best, error)
	Update(name string, seconds float64) scoreboard.UpdateResult
	Top(n int) []scoreboard.Entry
}

// Config holds the gameplay tunables for a session.
type Config struct {
	MinDelay time.Duration // lower bound of the random countdown
	MaxDelay time.Duration // upper bound of the random countdown
	TopSize  int           // leaderboard length
}

// DefaultConfig returns the standard 3-7 second countdown window with a
// five-row leaderboard.
func DefaultConfig() Config {
	return Config{
		MinDelay: 3 * time.Second,
		MaxDelay: 7 * time.Second,
		TopSize:  5,
	}
}

// Session is the per-process game session. One exists per running
// program; it owns the round state and talks to the scoreboard only
// through ScoreStore operations.
type Session struct {
	username string
	store    ScoreStore
	clock    core.Clock
	rng      *rand.Rand
	cfg      Config

	state          State
	countdownDelay time.Duration
	countdownStart time.Time
	stimulusAt     time.Time
	reaction       time.Duration
	outcome        Outcome
	message        string
	top            []scoreboard.Entry
}

// New creates a session for the given (already normalized) username and
// registers the player with the scoreboard. A registration failure is
// not fatal; the store degrades and the session plays on.
func New(username string, store ScoreStore, clock core.Clock, rng *rand.Rand, cfg Config) *Session {
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	if cfg.TopSize <= 0 {
		cfg.TopSize = DefaultConfig().TopSize
	}

	s := &Session{
		username: username,
		store:    store,
		clock:    clock,
		rng:      rng,
		cfg:      cfg,
		state:    StateIdle,
	}
	//nolint:errcheck // Best-effort registration, session continues regardless
	s.store.RegisterOrGet(username)
	return s
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Username returns the player this session belongs to.
func (s *Session) Username() string { return s.username }

// Reaction returns the measured time of the last completed round.
func (s *Session) Reaction() time.Duration { return s.reaction }

// ReactionSeconds returns the last reaction time in seconds, rounded to
// millisecond precision as it is stored and displayed.
func (s *Session) ReactionSeconds() float64 {
	return roundMillis(s.reaction)
}

// Outcome returns the structured result of the last completed round.
func (s *Session) Outcome() Outcome { return s.outcome }

// Message returns the display summary of the last round.
func (s *Session) Message() string { return s.message }

// Top returns the leaderboard rows loaded on entering StateLeaderboard.
func (s *Session) Top() []scoreboard.Entry { return s.top }

// HandleAction feeds one semantic input action into the state machine.
// Actions that are not meaningful in the current state are ignored; in
// particular a primary action during Countdown has no effect at all.
func (s *Session) HandleAction(a core.Action) {
	switch a {
	case core.ActionPrimary:
		s.handlePrimary()
	case core.ActionScores:
		if s.state == StateIdle {
			s.openLeaderboard()
		}
	case core.ActionBack:
		if s.state == StateResult || s.state == StateLeaderboard {
			s.state = StateIdle
		}
	}
}

// Tick advances time-driven transitions. It must be called regularly
// while the session is in Countdown; all other states ignore it.
func (s *Session) Tick() {
	if s.state != StateCountdown {
		return
	}
	if s.clock.Now().Sub(s.countdownStart) >= s.countdownDelay {
		// Stimulus goes up now; this timestamp anchors the measurement.
		s.stimulusAt = s.clock.Now()
		s.state = StateArmed
	}
}

// CountdownDelay returns the delay drawn for the current countdown.
func (s *Session) CountdownDelay() time.Duration { return s.countdownDelay }

func (s *Session) handlePrimary() {
	switch s.state {
	case StateIdle:
		s.startCountdown()
	case StateCountdown:
		// Premature click: never a reaction, never a transition.
	case StateArmed:
		s.resolve()
	case StateResult, StateLeaderboard:
		s.state = StateIdle
	}
}

func (s *Session) startCountdown() {
	window := s.cfg.MaxDelay - s.cfg.MinDelay
	s.countdownDelay = s.cfg.MinDelay + time.Duration(s.rng.Float64()*float64(window))
	s.countdownStart = s.clock.Now()
	s.state = StateCountdown
}

// resolve computes the reaction sample and records it. It runs exactly
// once per Armed round, using the stimulus timestamp captured in Tick
// and a single response timestamp read here.
func (s *Session) resolve() {
	s.reaction = s.clock.Now().Sub(s.stimulusAt)
	seconds := roundMillis(s.reaction)

	res := s.store.Update(s.username, seconds)
	switch {
	case res.Err != nil:
		s.outcome = OutcomeFailed
		s.message = fmt.Sprintf("Could not update scoreboard: %v", res.Err)
	case res.Improved:
		s.outcome = OutcomeImproved
		s.message = fmt.Sprintf("New personal best: %.3f s", seconds)
	default:
		s.outcome = OutcomeNotImproved
		s.message = fmt.Sprintf("Your time: %.3f s (best stands at %.3f s)", seconds, res.Best.Seconds)
	}

	s.state = StateResult
}

func (s *Session) openLeaderboard() {
	s.top = s.store.Top(s.cfg.TopSize)
	s.state = StateLeaderboard
}

// roundMillis rounds a duration to whole milliseconds expressed in seconds.
func roundMillis(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}
