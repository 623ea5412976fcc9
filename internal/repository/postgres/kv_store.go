// Package postgres persists the widget state as three independent keyed
// blobs in a kv_store table, mirroring the original per-profile storage
// layout. Repositories built on the store do whole-collection
// read-modify-write; the store mutex keeps writes single-file.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"gamenight/internal/domain"
)

// Fixed blob keys. Each key holds one JSON document.
const (
	keyEvents      = "game_night_events"
	keyPreferences = "user_preferences"
	keyCurrentUser = "current_user"
)

// Schema is the DDL for the backing table, applied at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// KVStore is a keyed blob store over a single table. Mutating a blob takes
// the mutex for the whole read-modify-write cycle, which realizes the
// single-writer-at-a-time, full-document-replace contract. There is no
// optimistic lock: the last writer wins.
type KVStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewKVStore returns a KVStore over db. EnsureSchema must have been run.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// EnsureSchema creates the kv_store table when it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

// get returns the raw blob for key, or domain.ErrNotFound when absent.
func (s *KVStore) get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value FROM kv_store
		WHERE key = $1
	`
	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// set writes the blob for key, replacing any previous value.
func (s *KVStore) set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now())
	return err
}
