// Package snapshotstore is a reference implementation of the external
// persistence collaborator for analytics snapshots. The resolution core
// never calls it; hosts that want cross-process analytics wire it up
// around Export/Import themselves.
package snapshotstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoSnapshots is returned by Latest when nothing has been saved yet.
var ErrNoSnapshots = errors.New("no snapshots stored")

// Snapshot is one stored analytics export blob.
type Snapshot struct {
	ID         int64
	SessionID  string
	CapturedAt time.Time
	Blob       []byte
}

// Store persists analytics export blobs in a local SQLite database.
// Safe for concurrent use (database/sql serializes access).
type Store struct {
	db *sql.DB
}

// Open creates or opens the snapshot database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return fmt.Errorf("failed to enable WAL: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS analytics_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		captured_at DATETIME NOT NULL,
		blob TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_session ON analytics_snapshots(session_id);
	CREATE INDEX IF NOT EXISTS idx_snapshots_captured ON analytics_snapshots(captured_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

// Save stores an export blob. The session id is read out of the blob so
// callers only handle the opaque bytes.
func (s *Store) Save(ctx context.Context, blob []byte) error {
	var header struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(blob, &header); err != nil {
		return fmt.Errorf("snapshot blob is not valid JSON: %w", err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analytics_snapshots (session_id, captured_at, blob) VALUES (?, ?, ?)`,
		header.SessionID, time.Now().UTC(), string(blob))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recently captured blob.
func (s *Store) Latest(ctx context.Context) ([]byte, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM analytics_snapshots ORDER BY id DESC LIMIT 1`).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshots
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return []byte(blob), nil
}

// History returns up to limit snapshots, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, captured_at, blob FROM analytics_snapshots ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var blob string
		if err := rows.Scan(&snap.ID, &snap.SessionID, &snap.CapturedAt, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap.Blob = []byte(blob)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
