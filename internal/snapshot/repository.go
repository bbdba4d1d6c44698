// Package snapshot persists the last successfully fetched index series
// per item code, so the API can serve stale data when KOSIS is down and
// the refresh worker has a write target.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mulga/internal/core"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("no snapshot for code")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Save replaces the stored series for a code and stamps the fetch time.
func (r *SQLiteRepository) Save(ctx context.Context, code string, series core.Series) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM series_points WHERE code = ?`, code); err != nil {
		return fmt.Errorf("clear series points: %w", err)
	}

	for _, p := range series {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO series_points (code, year, idx) VALUES (?, ?, ?)`,
			code, p.Year, p.Index)
		if err != nil {
			return fmt.Errorf("insert series point (%s/%s): %w", code, p.Year, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (code, fetched_at) VALUES (?, ?)
		 ON CONFLICT(code) DO UPDATE SET fetched_at = excluded.fetched_at`,
		code, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert snapshot meta: %w", err)
	}

	return tx.Commit()
}

// Load returns the stored series for a code, ascending by year, with the
// time it was fetched. ErrNotFound when the code was never snapshotted.
func (r *SQLiteRepository) Load(ctx context.Context, code string) (core.Series, time.Time, error) {
	var stamp string
	err := r.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM snapshots WHERE code = ?`, code).Scan(&stamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNotFound
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load snapshot meta: %w", err)
	}

	fetchedAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse fetched_at %q: %w", stamp, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT year, idx FROM series_points WHERE code = ? ORDER BY year ASC`, code)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load series points: %w", err)
	}
	defer rows.Close()

	var series core.Series
	for rows.Next() {
		var p core.IndexPoint
		if err := rows.Scan(&p.Year, &p.Index); err != nil {
			return nil, time.Time{}, fmt.Errorf("scan series point: %w", err)
		}
		series = append(series, p)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("iterate series points: %w", err)
	}

	return series, fetchedAt, nil
}

// Codes lists every snapshotted item code.
func (r *SQLiteRepository) Codes(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code FROM snapshots ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshot codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan snapshot code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Ping reports whether the underlying database is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
