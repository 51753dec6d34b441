// Package history keeps a local log of comparison sessions: every
// filter, export, mapping, or preset action appends one row. The log
// is a convenience record, so failures here degrade to warnings and
// never fail the user's action.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Kind classifies a recorded session
type Kind string

const (
	KindFilter Kind = "filter"
	KindExport Kind = "export"
	KindMap    Kind = "map"
	KindPreset Kind = "preset"
)

// Session is one recorded user action
type Session struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Detail    string    `json:"detail"`
	Records   int       `json:"records"`
	CreatedAt time.Time `json:"created_at"`
}

// Store provides persistence for sessions in a SQLite database
type Store struct {
	conn *sql.DB
}

// OpenStore opens or creates the history database at dbPath
func OpenStore(dbPath string) (*Store, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	store := &Store{conn: conn}
	if err := store.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return store, nil
}

func (s *Store) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			records INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Record appends a session row and returns its generated id
func (s *Store) Record(kind Kind, detail string, records int) (string, error) {
	id := uuid.NewString()
	_, err := s.conn.Exec(
		`INSERT INTO sessions (id, kind, detail, records, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, string(kind), detail, records, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to record session: %w", err)
	}
	return id, nil
}

// Recent returns the latest sessions, newest first, capped at limit
func (s *Store) Recent(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.Query(
		`SELECT id, kind, detail, records, created_at
		 FROM sessions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt int64
		if err := rows.Scan(&sess.ID, &sess.Kind, &sess.Detail, &sess.Records, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sess.CreatedAt = time.Unix(createdAt, 0)
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.conn.Close()
}
