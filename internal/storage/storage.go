package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"bellum/internal/log"
)

// Well-known settings keys. These mirror the keys the browser client kept
// in localStorage.
const (
	KeyToken    = "token"
	KeyLanguage = "language"
)

// Store is the durable client-side key/value store backing session tokens
// and user preferences. Concurrent writers follow last-writer-wins, the
// same contract the browser client had across tabs.
type Store struct {
	db   *sql.DB
	path string

	getStmt *sql.Stmt
	setStmt *sql.Stmt
	delStmt *sql.Stmt
}

// Open opens (or creates) the settings database at the given path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping settings database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.prepare(); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("Settings store opened", "path", path)
	return s, nil
}

func (s *Store) prepare() error {
	var err error
	if s.getStmt, err = s.db.Prepare(`SELECT value FROM settings WHERE key = ?`); err != nil {
		return fmt.Errorf("prepare get: %w", err)
	}
	if s.setStmt, err = s.db.Prepare(`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`); err != nil {
		return fmt.Errorf("prepare set: %w", err)
	}
	if s.delStmt, err = s.db.Prepare(`DELETE FROM settings WHERE key = ?`); err != nil {
		return fmt.Errorf("prepare delete: %w", err)
	}
	return nil
}

// Get returns the stored value for key, or "" when the key is absent.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.getStmt.QueryRow(key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load setting %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	if _, err := s.setStmt.Exec(key, value); err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	if _, err := s.delStmt.Exec(key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	for _, stmt := range []*sql.Stmt{s.getStmt, s.setStmt, s.delStmt} {
		if stmt != nil {
			stmt.Close()
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("close settings database: %w", err)
		}
	}
	return nil
}
