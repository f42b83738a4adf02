// Package storage provides SQLite-based persistence for solve records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only completed levels are stored; in-progress play is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve represents a single completed level.
type Solve struct {
	ID         int64
	PackID     string
	LevelIndex int // zero-based
	LevelName  string
	Moves      int
	Player     string // SSH user or local user name, may be empty
	CreatedAt  time.Time
}

// LevelBest summarizes the solves of one level.
type LevelBest struct {
	LevelIndex int
	LevelName  string
	BestMoves  int
	Solves     int
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	PackID       string
	SolvedLevels int
	TotalSolves  int
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			level_name TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_pack ON solves(pack_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(pack_id, level_index, moves ASC);
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

// SaveSolve records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.PackID == "" {
		return 0, errors.New("storage: solve has no pack id")
	}
	if solve.Moves <= 0 {
		return 0, fmt.Errorf("storage: invalid move count %d", solve.Moves)
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (pack_id, level_index, level_name, moves, player) VALUES (?, ?, ?, ?, ?)",
		solve.PackID, solve.LevelIndex, solve.LevelName, solve.Moves, solve.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the N best solves of one level.
// Results are ordered by moves ascending, earliest first on ties.
func (s *Store) BestSolves(packID string, levelIndex, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, level_index, level_name, moves, player, created_at
		 FROM solves
		 WHERE pack_id = ? AND level_index = ?
		 ORDER BY moves ASC, id ASC
		 LIMIT ?`,
		packID, levelIndex, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var sv Solve
		var createdAt any
		if err := rows.Scan(&sv.ID, &sv.PackID, &sv.LevelIndex, &sv.LevelName, &sv.Moves, &sv.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sv.CreatedAt = parseTimestamp(createdAt)
		solves = append(solves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// BestMoves returns the lowest move count recorded for a level.
// The boolean is false if the level has never been solved.
func (s *Store) BestMoves(packID string, levelIndex int) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE pack_id = ? AND level_index = ?",
		packID, levelIndex,
	).Scan(&moves)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, false, nil
	}

	return int(moves.Int64), true, nil
}

// PackSolves returns the best result of every solved level in a pack,
// ordered by level index.
func (s *Store) PackSolves(packID string) ([]LevelBest, error) {
	rows, err := s.db.Query(
		`SELECT level_index, MAX(level_name), MIN(moves), COUNT(*)
		 FROM solves
		 WHERE pack_id = ?
		 GROUP BY level_index
		 ORDER BY level_index ASC`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pack solves: %w", err)
	}
	defer rows.Close()

	var bests []LevelBest
	for rows.Next() {
		var b LevelBest
		if err := rows.Scan(&b.LevelIndex, &b.LevelName, &b.BestMoves, &b.Solves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		bests = append(bests, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return bests, nil
}

// ClearSolves deletes all solves for the given pack.
func (s *Store) ClearSolves(packID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE pack_id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// GetPackStats retrieves aggregated statistics for a specific pack.
func (s *Store) GetPackStats(packID string) (*PackStats, error) {
	stats := &PackStats{PackID: packID}

	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT level_index), COUNT(*)
		 FROM solves WHERE pack_id = ?`,
		packID,
	).Scan(&stats.SolvedLevels, &stats.TotalSolves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE pack_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		packID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllPackStats retrieves statistics for every pack with at least one solve.
func (s *Store) GetAllPackStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack_id, COUNT(DISTINCT level_index), COUNT(*), MAX(created_at)
		 FROM solves
		 GROUP BY pack_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var ps PackStats
		var lastPlayed any
		if err := rows.Scan(&ps.PackID, &ps.SolvedLevels, &ps.TotalSolves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTimestamp(lastPlayed)
		stats[ps.PackID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or text.
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
