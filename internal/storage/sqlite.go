// Package storage provides SQLite-based persistence for sketch pad
// preferences and session statistics. Drawings themselves are never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Preference keys.
const (
	PrefGridSize = "grid_size"
	PrefMode     = "mode"
	PrefColor    = "color"
	PrefTheme    = "theme"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is the summary of one sketch pad run.
type Session struct {
	ID        string
	User      string // Local user or SSH user name
	Remote    bool   // Started through the SSH server
	Strokes   int    // Cells touched in normal mode
	Rainbow   int    // Cells touched in rainbow mode
	Darkens   int    // Cells touched in darken mode
	Clears    int    // Explicit clears
	Resizes   int    // Grid size changes
	FinalSize int    // Grid size at the end of the session
	StartedAt time.Time
	EndedAt   time.Time
}

// Interactions returns the total number of cell interactions.
func (s Session) Interactions() int {
	return s.Strokes + s.Rainbow + s.Darkens
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	if s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Totals aggregates all recorded sessions.
type Totals struct {
	Sessions     int
	Interactions int
	Strokes      int
	Rainbow      int
	Darkens      int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user TEXT NOT NULL,
			remote INTEGER NOT NULL DEFAULT 0,
			strokes INTEGER NOT NULL DEFAULT 0,
			rainbow INTEGER NOT NULL DEFAULT 0,
			darkens INTEGER NOT NULL DEFAULT 0,
			clears INTEGER NOT NULL DEFAULT 0,
			resizes INTEGER NOT NULL DEFAULT 0,
			final_size INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);
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

// SetPreference stores a preference value, replacing any previous one.
func (s *Store) SetPreference(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preference %s: %w", key, err)
	}
	return nil
}

// Preference returns a stored preference and whether it was present.
func (s *Store) Preference(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query preference %s: %w", key, err)
	}
	return value, true, nil
}

// PreferenceInt returns a stored integer preference. Missing or malformed
// values report ok=false.
func (s *Store) PreferenceInt(key string) (int, bool, error) {
	v, ok, err := s.Preference(key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(v)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// Preferences returns all stored preferences.
func (s *Store) Preferences() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM preferences ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preferences: %w", err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		prefs[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return prefs, nil
}

// ClearPreferences removes every stored preference.
func (s *Store) ClearPreferences() error {
	if _, err := s.db.Exec("DELETE FROM preferences"); err != nil {
		return fmt.Errorf("storage: cannot clear preferences: %w", err)
	}
	return nil
}

// SaveSession records a finished session. Saving the same ID again
// overwrites the earlier record.
func (s *Store) SaveSession(sess Session) error {
	if sess.ID == "" {
		return errors.New("storage: session ID is required")
	}

	remote := 0
	if sess.Remote {
		remote = 1
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO sessions
		 (id, user, remote, strokes, rainbow, darkens, clears, resizes, final_size, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.User, remote, sess.Strokes, sess.Rainbow, sess.Darkens,
		sess.Clears, sess.Resizes, sess.FinalSize,
		sess.StartedAt.Unix(), sess.EndedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// RecentSessions returns the most recently started sessions first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, user, remote, strokes, rainbow, darkens, clears, resizes, final_size, started_at, ended_at
		 FROM sessions
		 ORDER BY started_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var remote int
		var started, ended int64
		if err := rows.Scan(&sess.ID, &sess.User, &remote, &sess.Strokes, &sess.Rainbow,
			&sess.Darkens, &sess.Clears, &sess.Resizes, &sess.FinalSize, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Remote = remote != 0
		sess.StartedAt = time.Unix(started, 0)
		sess.EndedAt = time.Unix(ended, 0)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionTotals aggregates interaction counts over all sessions.
func (s *Store) SessionTotals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(strokes), 0), COALESCE(SUM(rainbow), 0), COALESCE(SUM(darkens), 0)
		 FROM sessions`,
	).Scan(&t.Sessions, &t.Strokes, &t.Rainbow, &t.Darkens)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	t.Interactions = t.Strokes + t.Rainbow + t.Darkens
	return t, nil
}
