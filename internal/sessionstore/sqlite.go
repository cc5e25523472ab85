package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/dmitrijs2005/storefront/internal/sessionstore/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations brings the session database schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// OpenSQLite opens (creating if needed) the SQLite database at dsn, applies
// migrations and returns a store bound to key.
func OpenSQLite(ctx context.Context, dsn string, key string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStore(db, key), nil
}

// SQLiteStore keeps the session record in the kv table.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

func NewSQLiteStore(db *sql.DB, key string) *SQLiteStore {
	if key == "" {
		key = DefaultKey
	}
	return &SQLiteStore{db: db, key: key}
}

func (r *SQLiteStore) Save(ctx context.Context, user models.UserSession) error {
	b, err := encode(user)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, r.key, b)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save session[%s]: %w", r.key, err)
	}
	return nil
}

func (r *SQLiteStore) Load(ctx context.Context) (*models.UserSession, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, r.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session[%s]: %w", r.key, err)
	}
	return decode(value)
}

func (r *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, r.key); err != nil {
		return fmt.Errorf("failed to clear session[%s]: %w", r.key, err)
	}
	return nil
}

func (r *SQLiteStore) Close() error {
	return r.db.Close()
}
