// Package storage provides SQLite-based persistence for finished runs and
// player profiles. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single finished run.
type ScoreEntry struct {
	ID        int64
	Player    string
	Outcome   string // Phase the run ended in, e.g. "run-ended"
	Score     int
	Distance  int
	CreatedAt time.Time
}

// PlayerStats contains aggregated results for one player.
type PlayerStats struct {
	Player     string
	Runs       int
	BossWins   int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			distance INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS profiles (
			player TEXT PRIMARY KEY,
			best_score INTEGER NOT NULL DEFAULT 0,
			currency INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS power_ups (
			player TEXT NOT NULL,
			item_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			PRIMARY KEY (player, item_id)
		);
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

// SaveRun records a finished run and returns the id of the new row.
func (s *Store) SaveRun(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player, outcome, score, distance) VALUES (?, ?, ?, ?)",
		e.Player, e.Outcome, e.Score, e.Distance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best runs of all players, highest score first.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, outcome, score, distance, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Outcome, &e.Score, &e.Distance, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score of a player, or 0 without runs.
func (s *Store) HighScore(player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE player = ?",
		player,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated results for a player.
func (s *Store) Stats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM runs WHERE player = ?`,
		runner.PhaseBossWon.String(), player,
	).Scan(&stats.Runs, &stats.BossWins, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes every run of a player.
func (s *Store) ClearRuns(player string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveProfile stores the persistent engine state of a player, replacing
// what was there.
func (s *Store) SaveProfile(player string, p runner.Profile) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		`INSERT INTO profiles (player, best_score, currency, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
		   best_score = MAX(best_score, excluded.best_score),
		   currency = excluded.currency,
		   updated_at = excluded.updated_at`,
		player, p.BestScore, p.Currency,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}

	if _, err = tx.Exec("DELETE FROM power_ups WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot reset power-ups: %w", err)
	}
	for id, level := range p.Levels {
		_, err = tx.Exec(
			"INSERT INTO power_ups (player, item_id, level) VALUES (?, ?, ?)",
			player, id, level,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save power-up %s: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit profile: %w", err)
	}
	return nil
}

// LoadProfile returns the saved profile of a player. ok is false when the
// player has never been saved.
func (s *Store) LoadProfile(player string) (p runner.Profile, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT best_score, currency FROM profiles WHERE player = ?",
		player,
	).Scan(&p.BestScore, &p.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return runner.Profile{}, false, nil
	}
	if err != nil {
		return runner.Profile{}, false, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	rows, err := s.db.Query("SELECT item_id, level FROM power_ups WHERE player = ?", player)
	if err != nil {
		return runner.Profile{}, false, fmt.Errorf("storage: cannot query power-ups: %w", err)
	}
	defer rows.Close()

	p.Levels = make(map[string]int)
	for rows.Next() {
		var id string
		var level int
		if err := rows.Scan(&id, &level); err != nil {
			return runner.Profile{}, false, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Levels[id] = level
	}
	if err := rows.Err(); err != nil {
		return runner.Profile{}, false, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return p, true, nil
}

// parseTime handles both driver-parsed times and raw SQLite datetime text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
