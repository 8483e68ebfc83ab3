// Package storage provides SQLite-based persistence for settings, the high
// score and the history of finished games.
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

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// HighScoreKey is the key-value entry holding the best score.
const HighScoreKey = "high_score"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished playthrough.
type GameRecord struct {
	ID         int64
	RunID      uuid.UUID
	Score      int
	PatternLen int // Length of the pattern when the game ended
	CreatedAt  time.Time
}

// Stats aggregates the recorded games.
type Stats struct {
	GamesCount int
	Best       int
	AvgScore   float64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			pattern_len INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
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

// Get returns the value stored under key. ok is false if the key is absent.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// HighScore returns the stored best score, or 0 if none was saved.
func (s *Store) HighScore() (int, error) {
	value, ok, err := s.Get(HighScoreKey)
	if err != nil || !ok {
		return 0, err
	}
	score, err := strconv.Atoi(string(value))
	if err != nil || score < 0 {
		// A corrupt entry reads as no high score; the next record overwrites it.
		return 0, nil
	}
	return score, nil
}

// SaveHighScore overwrites the stored best score.
func (s *Store) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}
	return s.Put(HighScoreKey, []byte(strconv.Itoa(score)))
}

// SaveGame records a finished playthrough. A zero RunID is replaced by a
// fresh one. Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if rec.RunID == uuid.Nil {
		rec.RunID = uuid.New()
	}

	result, err := s.db.Exec(
		"INSERT INTO games (run_id, score, pattern_len) VALUES (?, ?, ?)",
		rec.RunID.String(), rec.Score, rec.PatternLen,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopGames returns the best N games, highest score first.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, run_id, score, pattern_len, created_at
		 FROM games
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentGames returns the most recent N games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, run_id, score, pattern_len, created_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryGames(query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var runID string
		var createdAt any
		if err := rows.Scan(&rec.ID, &runID, &rec.Score, &rec.PatternLen, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if parsed, err := uuid.Parse(runID); err == nil {
			rec.RunID = parsed
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// ClearGames deletes the game history. The high score is kept.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// GetStats aggregates the game history.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.Best, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
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
