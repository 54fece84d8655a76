package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/eaterapp/eaterauth/internal/cryptox"
	"github.com/eaterapp/eaterauth/internal/dbx"
)

// SQLiteStore is the SQLite implementation of Store. Values are sealed with
// AES-256-GCM before write and opened after read, so secrets are never stored
// in the clear. Rows are scoped by namespace; two stores with different
// namespaces can share one database file without seeing each other's entries.
type SQLiteStore struct {
	db        *sql.DB
	namespace string
	key       []byte // 32-byte AES-256 key

	// mu serializes mutations so that two in-flight writes to the same key
	// cannot interleave their delete/insert pairs.
	mu sync.Mutex
}

// NewSQLiteStore creates a store over db, scoped to namespace. key must be
// cryptox.KeySize bytes.
func NewSQLiteStore(db *sql.DB, namespace string, key []byte) (*SQLiteStore, error) {
	if namespace == "" {
		return nil, errors.New("credstore: namespace must not be empty")
	}
	if len(key) != cryptox.KeySize {
		return nil, fmt.Errorf("credstore: key must be %d bytes, got %d", cryptox.KeySize, len(key))
	}
	return &SQLiteStore{db: db, namespace: namespace, key: key}, nil
}

// Save stores value under key, replacing any existing value. The removal of
// the old row and the insertion of the new one happen in a single transaction,
// so readers observe either the old value or the new one, never absence.
func (s *SQLiteStore) Save(ctx context.Context, key, value string) error {
	sealed, err := cryptox.SealString(value, s.key)
	if err != nil {
		return fmt.Errorf("seal credential %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM credentials WHERE namespace = ? AND key = ?`,
			s.namespace, key); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO credentials (namespace, key, value) VALUES (?, ?, ?)`,
			s.namespace, key, sealed)
		return err
	})
	if err != nil {
		return fmt.Errorf("save credential %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key. Absence is a normal outcome
// reported via ok=false with a nil error.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var sealed string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE namespace = ? AND key = ?`,
		s.namespace, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get credential %q: %w", key, err)
	}

	value, err := cryptox.OpenString(sealed, s.key)
	if err != nil {
		return "", false, fmt.Errorf("open credential %q: %w", key, err)
	}
	return value, true, nil
}

// Exists reports whether key holds a value, without decrypting it.
func (s *SQLiteStore) Exists(ctx context.Context, key string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM credentials WHERE namespace = ? AND key = ?`,
		s.namespace, key).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check credential %q: %w", key, err)
	}
	return true, nil
}

// Delete removes the entry for key if present. Deleting a missing key is not
// an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE namespace = ? AND key = ?`,
		s.namespace, key)
	if err != nil {
		return fmt.Errorf("delete credential %q: %w", key, err)
	}
	return nil
}

// DeleteAll removes every entry in this store's namespace.
func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE namespace = ?`, s.namespace)
	if err != nil {
		return fmt.Errorf("delete all credentials: %w", err)
	}
	return nil
}
