// Package storage provides SQLite-based persistence for simulation
// snapshots. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for snapshot persistence.
type Store struct {
	db *sql.DB
}

// SnapshotEntry is a single persisted snapshot record. Data holds the
// engine's encoded snapshot bytes; Version mirrors the snapshot layout
// version so old rows can be recognized without decoding.
type SnapshotEntry struct {
	ID        int64
	World     string
	Version   int
	Data      []byte
	CreatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world TEXT NOT NULL,
			version INTEGER NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_world ON snapshots(world);
		CREATE INDEX IF NOT EXISTS idx_snapshots_latest ON snapshots(world, id DESC);
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

// SaveSnapshot records a new snapshot for the given world.
// Returns the ID of the inserted record.
func (s *Store) SaveSnapshot(world string, version int, data []byte) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO snapshots (world, version, data) VALUES (?, ?, ?)",
		world, version, data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LatestSnapshot retrieves the most recent snapshot for the given world.
// Returns nil with no error when the world has no snapshots yet.
func (s *Store) LatestSnapshot(world string) (*SnapshotEntry, error) {
	var entry SnapshotEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, world, version, data, created_at
		 FROM snapshots
		 WHERE world = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		world,
	).Scan(&entry.ID, &entry.World, &entry.Version, &entry.Data, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	entry.CreatedAt = parseTimestamp(createdAt)
	return &entry, nil
}

// ListSnapshots retrieves the most recent snapshots for the given world,
// newest first.
func (s *Store) ListSnapshots(world string, limit int) ([]SnapshotEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, world, version, data, created_at
		 FROM snapshots
		 WHERE world = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		world, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var entries []SnapshotEntry
	for rows.Next() {
		var e SnapshotEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.World, &e.Version, &e.Data, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Prune deletes all but the newest keep snapshots for the given world.
func (s *Store) Prune(world string, keep int) error {
	if keep < 0 {
		keep = 0
	}

	_, err := s.db.Exec(
		`DELETE FROM snapshots
		 WHERE world = ?
		   AND id NOT IN (
		       SELECT id FROM snapshots WHERE world = ? ORDER BY id DESC LIMIT ?
		   )`,
		world, world, keep,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prune snapshots: %w", err)
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
