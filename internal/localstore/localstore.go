// Package localstore is the client-side persistent key-value store, the
// counterpart of browser local storage. Each key has exactly one writer:
// the session coordinator owns the auth keys and the theme manager owns
// KeyThemeSettings.
package localstore

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	KeyAuthToken     = "auth_token"
	KeyRefreshToken  = "refresh_token"
	KeyUserData      = "user_data"
	KeyThemeSettings = "theme-settings"
	KeyUserType      = "userType"
	KeyHasSecondhand = "hasSecondhandStore"
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
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) Get(key string) (string, bool, error) {
	var v string
	err := s.db.Get(&v, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// AuthToken reads the stored bearer token; empty when logged out.
// Satisfies gateway.TokenSource.
func (s *Store) AuthToken() string {
	v, ok, err := s.Get(KeyAuthToken)
	if err != nil || !ok {
		return ""
	}
	return v
}

func (s *Store) Close() error { return s.db.Close() }
