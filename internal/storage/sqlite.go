// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID          int64
	Seed        int64
	Rounds      int
	DeletedRows int
	EndedAt     time.Time
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			deleted_rows INTEGER NOT NULL,
			ended_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_best ON games(deleted_rows DESC, rounds DESC);
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

// SaveGame records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(seed int64, rounds, deletedRows int) (int64, error) {
	if rounds < 0 || deletedRows < 0 {
		return 0, fmt.Errorf("storage: invalid game stats rounds=%d deleted=%d", rounds, deletedRows)
	}

	result, err := s.db.Exec(
		"INSERT INTO games (seed, rounds, deleted_rows) VALUES (?, ?, ?)",
		seed, rounds, deletedRows,
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

// RecentGames retrieves the last N games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, rounds, deleted_rows, ended_at
		 FROM games
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var endedAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Rounds, &r.DeletedRows, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = parseTime(endedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestGame returns the game with the most deleted rows, ties broken by
// rounds and then by the earlier game. Returns nil if no games exist.
func (s *Store) BestGame() (*GameRecord, error) {
	var r GameRecord
	var endedAt any

	err := s.db.QueryRow(
		`SELECT id, seed, rounds, deleted_rows, ended_at
		 FROM games
		 ORDER BY deleted_rows DESC, rounds DESC, id ASC
		 LIMIT 1`,
	).Scan(&r.ID, &r.Seed, &r.Rounds, &r.DeletedRows, &endedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best game: %w", err)
	}

	r.EndedAt = parseTime(endedAt)
	return &r, nil
}

// CountGames returns the number of recorded games.
func (s *Store) CountGames() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM games").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count games: %w", err)
	}
	return n, nil
}

// ClearGames deletes all recorded games.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
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

