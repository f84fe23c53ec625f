// Package scoreboard provides JSON-file persistence for per-user best
// reaction times. The document is a single human-editable file holding a
// "players" mapping; corrupt or missing storage always degrades to a fresh
// empty board rather than failing the caller.
package scoreboard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// UnsetDisplayScore stands in for "no recorded time" when ordering the
// leaderboard. Players without a score sort after every real entry but
// still participate in the ranking.
const UnsetDisplayScore = 9999.0

// Best is a player's best reaction time. Recorded is false for players
// who have never completed a scored round.
type Best struct {
	Recorded bool
	Seconds  float64
}

// Entry is a single leaderboard row. Placeholder rows pad the board to a
// fixed length when too few real players exist; they carry score 0 so the
// display layer can tell them apart from real times.
type Entry struct {
	Name        string
	Score       float64
	Placeholder bool
}

// LoadResult is the outcome of reading persistent storage.
type LoadResult struct {
	Players   map[string]Best
	Recovered bool  // storage was corrupt and has been reinitialized
	Err       error // I/O failure; Players is an in-memory fallback
}

// UpdateResult is the outcome of a best-time update attempt.
type UpdateResult struct {
	Improved bool
	Best     Best
	Err      error // reported for display only, never fatal
}

// document is the on-disk shape. A nil value in Players is the explicit
// "no score yet" marker; it survives JSON round-trips, unlike a float
// infinity sentinel.
type document struct {
	Players map[string]*float64 `json:"players"`
}

// Store manages the scoreboard file. It is stateless between calls: every
// operation is a read-modify-write of the whole document, so a crash can
// never leave partially applied state behind.
type Store struct {
	path   string
	logger *log.Logger
}

// Open prepares a store at the given path, expanding ~ and creating
// parent directories. The file itself is created lazily on first load.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scoreboard: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scoreboard: cannot create directory %s: %w", dir, err)
	}

	return &Store{
		path: path,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "scoreboard",
		}),
	}, nil
}

// Path returns the storage file path.
func (s *Store) Path() string {
	return s.path
}

// Normalize canonicalizes a username: trimmed, lower-cased, with "guest"
// standing in for empty input.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "guest"
	}
	return name
}

// Load reads the scoreboard from disk. A missing file is created empty; a
// malformed or structurally invalid file is rewritten empty. Parse
// failures never propagate: the caller always receives a valid board.
func (s *Store) Load() LoadResult {
	doc, recovered, err := s.loadDoc()

	players := make(map[string]Best, len(doc.Players))
	for name, v := range doc.Players {
		players[name] = fromStored(v)
	}

	return LoadResult{Players: players, Recovered: recovered, Err: err}
}

// loadDoc reads the raw document, reinitializing storage when needed.
func (s *Store) loadDoc() (doc document, recovered bool, err error) {
	doc.Players = make(map[string]*float64)

	data, readErr := os.ReadFile(s.path)
	if readErr != nil {
		if !os.IsNotExist(readErr) {
			s.logger.Warn("cannot read scoreboard, using empty board", "path", s.path, "error", readErr)
			err = readErr
		}
		// Missing (or unreadable) file: initialize a valid empty document.
		if saveErr := s.save(doc); saveErr != nil && err == nil {
			err = saveErr
		}
		return doc, false, err
	}

	var parsed document
	if jsonErr := json.Unmarshal(data, &parsed); jsonErr != nil || parsed.Players == nil {
		s.logger.Warn("scoreboard file is corrupt, reinitializing", "path", s.path, "error", jsonErr)
		if saveErr := s.save(doc); saveErr != nil {
			err = saveErr
		}
		return doc, true, err
	}

	return parsed, false, nil
}

// save writes the whole document to disk.
func (s *Store) save(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("scoreboard: cannot encode scoreboard: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("scoreboard: cannot write %s: %w", s.path, err)
	}
	return nil
}

// RegisterOrGet looks up a player, inserting them with no recorded score
// on first sight. Registering an existing player is a pure read: no write
// happens, so the call is idempotent. The returned error is informational;
// the Best value is always usable.
func (s *Store) RegisterOrGet(name string) (Best, error) {
	doc, _, err := s.loadDoc()

	stored, ok := doc.Players[name]
	if !ok {
		doc.Players[name] = nil
		if saveErr := s.save(doc); saveErr != nil && err == nil {
			err = saveErr
		}
		return Best{}, err
	}

	return fromStored(stored), err
}

// Update records a new reaction time if it strictly improves on the
// stored best. A player with no recorded score improves on any finite
// time. Failures while reading or persisting are reported in the result
// but treated as "not improved"; they never interrupt the session.
func (s *Store) Update(name string, seconds float64) UpdateResult {
	doc, _, err := s.loadDoc()
	if err != nil {
		return UpdateResult{Improved: false, Err: err}
	}

	old := fromStored(doc.Players[name])
	if old.Recorded && seconds >= old.Seconds {
		return UpdateResult{Improved: false, Best: old}
	}

	doc.Players[name] = &seconds
	if saveErr := s.save(doc); saveErr != nil {
		return UpdateResult{Improved: false, Best: old, Err: saveErr}
	}

	return UpdateResult{Improved: true, Best: Best{Recorded: true, Seconds: seconds}}
}

// Top returns the n best players ordered ascending by time. Players with
// no recorded score rank by UnsetDisplayScore; ties order by name. When
// fewer than n real players exist, synthetic "userK" rows with score 0
// pad the result to exactly n entries.
func (s *Store) Top(n int) []Entry {
	doc, _, _ := s.loadDoc()

	entries := make([]Entry, 0, len(doc.Players))
	for name, v := range doc.Players {
		score := UnsetDisplayScore
		if v != nil {
			score = *v
		}
		entries = append(entries, Entry{Name: name, Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score < entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	for len(entries) < n {
		entries = append(entries, Entry{
			Name:        fmt.Sprintf("user%d", len(entries)+1),
			Score:       0,
			Placeholder: true,
		})
	}

	return entries
}

func fromStored(v *float64) Best {
	if v == nil {
		return Best{}
	}
	return Best{Recorded: true, Seconds: *v}
}
