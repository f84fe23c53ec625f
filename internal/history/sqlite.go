// Package history provides SQLite-based persistence for individual
// reaction attempts. The JSON scoreboard holds only the per-user best;
// this log keeps every completed round for statistics. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for attempt history.
type Store struct {
	db *sql.DB
}

// Attempt represents a single completed reaction round.
type Attempt struct {
	ID        int64
	Username  string
	Millis    int
	CreatedAt time.Time
}

// PlayerStats contains aggregated statistics for one player.
type PlayerStats struct {
	Username    string
	Attempts    int
	BestMillis  int
	AvgMillis   float64
	LastAttempt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("history: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("history: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			millis INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_username ON attempts(username);
		CREATE INDEX IF NOT EXISTS idx_attempts_best ON attempts(username, millis ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveAttempt records a completed round for the given player.
// Returns the ID of the inserted record.
func (s *Store) SaveAttempt(username string, millis int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO attempts (username, millis) VALUES (?, ?)",
		username, millis,
	)
	if err != nil {
		return 0, fmt.Errorf("history: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("history: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAttempts retrieves the most recent attempts for a player,
// newest first.
func (s *Store) RecentAttempts(username string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, username, millis, created_at
		 FROM attempts
		 WHERE username = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		username, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.Username, &a.Millis, &createdAt); err != nil {
			return nil, fmt.Errorf("history: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTimestamp(createdAt)
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: row iteration error: %w", err)
	}

	return attempts, nil
}

// Stats retrieves aggregated statistics for a specific player.
func (s *Store) Stats(username string) (*PlayerStats, error) {
	stats := &PlayerStats{Username: username}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(millis), 0), COALESCE(AVG(millis), 0)
		 FROM attempts WHERE username = ?`,
		username,
	).Scan(&stats.Attempts, &stats.BestMillis, &stats.AvgMillis)
	if err != nil {
		return nil, fmt.Errorf("history: cannot get player stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM attempts WHERE username = ? ORDER BY created_at DESC LIMIT 1`,
		username,
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("history: cannot get last attempt: %w", err)
	}
	if err == nil {
		stats.LastAttempt = parseTimestamp(last)
	}

	return stats, nil
}

// AllStats retrieves statistics for every player with recorded attempts.
func (s *Store) AllStats() (map[string]*PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT username, COUNT(*), MIN(millis), AVG(millis), MAX(created_at)
		 FROM attempts
		 GROUP BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("history: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PlayerStats)
	for rows.Next() {
		var p PlayerStats
		var last any
		if err := rows.Scan(&p.Username, &p.Attempts, &p.BestMillis, &p.AvgMillis, &last); err != nil {
			return nil, fmt.Errorf("history: cannot scan stats row: %w", err)
		}
		p.LastAttempt = parseTimestamp(last)
		stats[p.Username] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearAttempts deletes all attempts for the given player.
func (s *Store) ClearAttempts(username string) error {
	_, err := s.db.Exec("DELETE FROM attempts WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("history: cannot clear attempts: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
