// Package storage handles SQLite persistence of progress and settings.
package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver.
)

// KV is the key-value adapter the session persists through. Values are
// JSON-serializable. Implementations must be safe to call when no durable
// storage is available; failures degrade, they never block the caller.
type KV interface {
	// Get unmarshals the stored value for key into out and reports whether
	// a value was present. A missing or unreadable value leaves out as the
	// caller initialized it.
	Get(key string, out any) bool
	Set(key string, value any) error
	Remove(key string) error
	Clear() error
	Close() error
}

// Store wraps SQLite access for settings and imported verbs.
type Store struct {
	db *sql.DB
}

var _ KV = (*Store)(nil)

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS custom_verbs (
			infinitive TEXT PRIMARY KEY,
			meaning TEXT NOT NULL,
			class TEXT NOT NULL,
			conjugations TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get loads and unmarshals the value stored under key.
func (s *Store) Get(key string, out any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// Set stores a JSON-encoded value under key, replacing any previous value.
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	return err
}

// Remove deletes the value stored under key.
func (s *Store) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	return err
}

// Clear removes all stored settings.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM settings`)
	return err
}

// Memory is an in-memory KV used when the database cannot be opened. The
// session still works; progress simply does not survive the process.
type Memory struct {
	values map[string]string
}

var _ KV = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get implements KV.
func (m *Memory) Get(key string, out any) bool {
	raw, ok := m.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

// Set implements KV.
func (m *Memory) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(raw)
	return nil
}

// Remove implements KV.
func (m *Memory) Remove(key string) error {
	delete(m.values, key)
	return nil
}

// Clear implements KV.
func (m *Memory) Clear() error {
	m.values = map[string]string{}
	return nil
}

// Close implements KV.
func (m *Memory) Close() error {
	return nil
}
