// Package store persists application state as independent keyed JSON
// blobs in a local SQLite database. Readers that find nothing, or find
// content that no longer parses, keep their fallback value; writers
// overwrite unconditionally (last write wins).
package store

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Keys for the four state blobs.
const (
	KeyCurrentUser = "current_user"
	KeyUsers       = "users"
	KeyCart        = "cart"
	KeyOrders      = "orders"
)

type Store struct {
	db *sqlx.DB
}

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// Load unmarshals the blob stored under key into the target. It reports
// whether the target was populated: a missing row or a value that fails
// to parse leaves the target untouched, so callers keep whatever
// fallback they initialized it with. Load never surfaces an error.
func (s *Store) Load(key string, into any) bool {
	var raw string
	if err := s.db.Get(&raw, `SELECT value FROM kv WHERE key = ?`, key); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return false
	}
	return true
}

// Save serializes value and upserts it under key, replacing any prior blob.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO kv(key, value, updated_at)
		VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(raw))
	return err
}

// Delete removes the blob under key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *Store) Close() error { return s.db.Close() }
