package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jask/signinsample/internal/database"
)

// SQLite stores preferences in the preferences table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite returns a backend over a migrated database handle.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (r *SQLite) GetBoolean(ctx context.Context, key string, def bool) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("get %s: %w", key, err)
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", ErrCorruptValue, key, raw)
	}
	return v, nil
}

func (r *SQLite) PutBoolean(ctx context.Context, key string, value bool) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO preferences(key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
	 value=excluded.value,
	 updated_at=excluded.updated_at;
	`, key, strconv.FormatBool(value), database.Now())
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (r *SQLite) Close() error {
	return r.db.Close()
}
