// Package storage persists finished runs in SQLite through the pure-Go
// modernc.org/sqlite driver, and converts them to and from the plain-text
// leaderboard format.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dungeon-jump/internal/leaderboard"
)

// Store keeps finished runs in a SQLite database. One Store is shared by
// every session of a server.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID         int64
	Name       string
	Difficulty string
	Character  string // Asset ID of the hero played
	Score      int
	CreatedAt  time.Time
}

// Open opens the database at path, creating it and its directory on first
// use. A leading ~ is the user's home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	store := &Store{db: db}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return store, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, rest), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			character_id TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(difficulty, score DESC);
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

// SaveScore records a finished run. The name is sanitized to the
// leaderboard's single-word form. Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (name, difficulty, character_id, score) VALUES (?, ?, ?, ?)",
		leaderboard.SanitizeName(e.Name), e.Difficulty, e.Character, e.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores returns up to limit runs of a difficulty, highest first. Equal
// scores keep the order they were set in, so a new score ranks below the
// ones it ties. A non-positive limit means the leaderboard size.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = leaderboard.DefaultSize
	}

	rows, err := s.db.Query(
		`SELECT id, name, difficulty, character_id, score, created_at
		 FROM scores WHERE difficulty = ?
		 ORDER BY score DESC, id ASC LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	return entries, nil
}

func scanScore(rows *sql.Rows) (ScoreEntry, error) {
	var (
		e         ScoreEntry
		createdAt any
	)
	if err := rows.Scan(&e.ID, &e.Name, &e.Difficulty, &e.Character, &e.Score, &createdAt); err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: scan score: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// HighScore returns the highest score for a difficulty.
// Returns 0 if no scores exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for a difficulty.
func (s *Store) ClearScores(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Leaderboard returns the top n scores of a difficulty as leaderboard entries.
func (s *Store) Leaderboard(difficulty string, n int) ([]leaderboard.Entry, error) {
	top, err := s.TopScores(difficulty, n)
	if err != nil {
		return nil, err
	}
	entries := make([]leaderboard.Entry, len(top))
	for i, e := range top {
		entries[i] = leaderboard.Entry{Name: e.Name, Score: e.Score}
	}
	return entries, nil
}

// ExportLeaderboard writes the top n scores of a difficulty in the
// "<name> <score>" text format.
func (s *Store) ExportLeaderboard(w io.Writer, difficulty string, n int) error {
	entries, err := s.Leaderboard(difficulty, n)
	if err != nil {
		return err
	}
	if err := leaderboard.Write(w, entries); err != nil {
		return fmt.Errorf("storage: export: %w", err)
	}
	return nil
}

// ImportLeaderboard reads "<name> <score>" lines and stores them under a
// difficulty in one transaction. Returns the number of imported entries.
func (s *Store) ImportLeaderboard(r io.Reader, difficulty string) (n int, err error) {
	entries, err := leaderboard.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("storage: import: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	stmt, err := tx.Prepare("INSERT INTO scores (name, difficulty, score) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare import: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(leaderboard.SanitizeName(e.Name), difficulty, e.Score); err != nil {
			return 0, fmt.Errorf("storage: cannot import %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return len(entries), nil
}

// Stats contains aggregated statistics for a difficulty.
type Stats struct {
	Difficulty string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics for every difficulty that has
// been played.
func (s *Store) GetStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), MAX(created_at)
		 FROM scores
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.RunsCount, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
