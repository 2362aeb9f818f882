// Package kv implements the durable side of the tracker: a single-table
// key/value blob store on SQLite. The whole user collection is persisted as
// one JSON blob under one key, read once at session start and rewritten
// after every mutation.
package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// migrations returns the schema statements. Each string is a single SQL
// statement (SQLite executes one at a time).
func migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`,
	}
}

// Store is a SQLite-backed key/value store.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the store at the given path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", path, err)
	}
	for _, stmt := range migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("cannot migrate store %q: %w", path, err)
		}
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Str("component", "kv").Logger()
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the blob stored under key, or ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return value, nil
}

// Put stores the blob under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	return nil
}

// PutQuiet is Put for fire-and-forget write-through: failures are logged
// and swallowed so a persistence hiccup never fails the mutation that
// triggered it.
func (s *Store) PutQuiet(key string, value []byte) {
	if err := s.Put(key, value); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("write-through failed")
		return
	}
	s.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("saved")
}
