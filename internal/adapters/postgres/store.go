// Package postgres implements ports.Store on the kv_store table created by
// the migrate package.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	apperrors "github.com/trifall/link-shortener-ui/internal/errors"
	"github.com/trifall/link-shortener-ui/internal/ports"
)

var _ ports.Store = (*Store)(nil)

// Store provides key/value persistence in PostgreSQL.
type Store struct {
	DB *sql.DB
}

// NewStore creates a new Store. The schema must already be migrated.
func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("key cannot be empty")
	}

	var value string
	err := withPgxConn(ctx, s.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, apperrors.MapStoreError(fmt.Errorf("postgres get %q: %w", key, err))
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return apperrors.MapStoreError(fmt.Errorf("postgres set %q: %w", key, err))
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return apperrors.MapStoreError(fmt.Errorf("postgres delete %q: %w", key, err))
	}
	return nil
}

// withPgxConn runs fn on the native pgx connection behind a database/sql handle.
func withPgxConn(ctx context.Context, db *sql.DB, fn func(*pgx.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get conn from pool: %w", err)
	}
	defer func() { _ = conn.Close() }()

	return conn.Raw(func(dc any) error {
		std, ok := dc.(*stdlib.Conn)
		if !ok {
			return errors.New("unexpected driver connection type; expected *stdlib.Conn")
		}
		return fn(std.Conn())
	})
}
