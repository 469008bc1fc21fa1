package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/serhangurakan/life-timer/internal/core"
)

// DefaultDBPath returns the default database location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".life-timer.db"), nil
}

// SQLite stores snapshot documents in a local SQLite file.
type SQLite struct {
	db *sql.DB
}

// Open opens (and creates if missing) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			user_id TEXT PRIMARY KEY,
			doc TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Load(ctx context.Context, userID string) (*core.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `SELECT doc FROM documents WHERE user_id = ?`, userID)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("document load: %w", err)
	}

	var snap core.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("document decode: %w", err)
	}
	return &snap, nil
}

func (s *SQLite) Save(ctx context.Context, userID string, snap core.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("document encode: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (user_id, doc, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at
	`, userID, string(raw), snap.LastTickTimestamp)
	if err != nil {
		return fmt.Errorf("document save: %w", err)
	}
	return nil
}
