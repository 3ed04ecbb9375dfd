// Package store persists checked proof sessions to SQLite, the way
// cmd/arischeck -save writes a record of what it checked.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id         TEXT PRIMARY KEY,
    source     TEXT NOT NULL,
    checked_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS verdicts (
    session_id TEXT NOT NULL,
    line       INTEGER NOT NULL,
    rule       TEXT NOT NULL,
    ok         BOOLEAN NOT NULL,
    message    TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`

// LineVerdict is one checked line's outcome, ready to persist.
type LineVerdict struct {
	Line    int
	Rule    string
	OK      bool
	Message string
}

// Store wraps a *sql.DB opened against the arischeck session database.
type Store struct {
	db *sql.DB
}

// Open creates the database file's parent directory if needed, opens a
// connection, and applies the schema.
func Open(dataSourceName string) (*Store, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

// SaveSession records one checked-proof session and its per-line verdicts
// under a fresh UUID, returning the new session ID.
func (s *Store) SaveSession(source string, checkedAt int64, verdicts []LineVerdict) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO sessions (id, source, checked_at) VALUES (?, ?, ?)`, id, source, checkedAt); err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO verdicts (session_id, line, rule, ok, message) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare verdict insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range verdicts {
		if _, err := stmt.Exec(id, v.Line, v.Rule, v.OK, v.Message); err != nil {
			return "", fmt.Errorf("failed to insert verdict for line %d: %w", v.Line, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit session: %w", err)
	}
	return id, nil
}

// Session is one previously checked proof, as recorded by SaveSession.
type Session struct {
	ID        string
	Source    string
	CheckedAt int64
	Verdicts  []LineVerdict
}

// LoadSession retrieves a previously saved session by ID.
func (s *Store) LoadSession(id string) (*Session, error) {
	var sess Session
	sess.ID = id
	row := s.db.QueryRow(`SELECT source, checked_at FROM sessions WHERE id = ?`, id)
	if err := row.Scan(&sess.Source, &sess.CheckedAt); err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	rows, err := s.db.Query(`SELECT line, rule, ok, message FROM verdicts WHERE session_id = ? ORDER BY line`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load verdicts for session %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var v LineVerdict
		if err := rows.Scan(&v.Line, &v.Rule, &v.OK, &v.Message); err != nil {
			return nil, fmt.Errorf("failed to scan verdict row: %w", err)
		}
		sess.Verdicts = append(sess.Verdicts, v)
	}
	return &sess, rows.Err()
}
