package orgstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"orgsetup/internal/domain"
	appErrors "orgsetup/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS current_org (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		name TEXT NOT NULL,
		cover TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS org_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		cover TEXT NOT NULL DEFAULT '',
		recorded_at TEXT NOT NULL
	);
`

// HistoryEntry is one past value of the current organization.
type HistoryEntry struct {
	Info       domain.OrgInfo
	RecordedAt time.Time
}

// Repository stores the current organization in a local SQLite file.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Repository, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeStateStoreFailed, "state path is empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, appErrors.New(appErrors.CodeStateStoreFailed, "create state directory", err)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStateStoreFailed, "open state db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeStateStoreFailed, "ping state db", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeStateStoreFailed, "apply state schema", err)
	}
	return &Repository{db: db, now: time.Now}, nil
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Close releases the database handle.
func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Load returns the saved current organization. ok is false when none was saved.
func (r *Repository) Load(ctx context.Context) (info domain.OrgInfo, ok bool, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, cover FROM current_org WHERE id = 1`)
	if err := row.Scan(&info.Name, &info.Cover); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.OrgInfo{}, false, nil
		}
		return domain.OrgInfo{}, false, appErrors.New(appErrors.CodeStateStoreFailed, "load current organization", err)
	}
	return info, true, nil
}

// Save replaces the current organization and appends it to the history.
func (r *Repository) Save(ctx context.Context, info domain.OrgInfo) error {
	stamp := r.now().UTC().Format(time.RFC3339Nano)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return appErrors.New(appErrors.CodeStateStoreFailed, "begin save", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO current_org (id, name, cover, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, cover = excluded.cover, updated_at = excluded.updated_at
	`, info.Name, info.Cover, stamp); err != nil {
		return appErrors.New(appErrors.CodeStateStoreFailed, "save current organization", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO org_history (name, cover, recorded_at) VALUES (?, ?, ?)`,
		info.Name, info.Cover, stamp,
	); err != nil {
		return appErrors.New(appErrors.CodeStateStoreFailed, "record organization history", err)
	}
	if err := tx.Commit(); err != nil {
		return appErrors.New(appErrors.CodeStateStoreFailed, "commit save", err)
	}
	return nil
}

// History returns up to limit past values, newest first. limit <= 0 means all.
func (r *Repository) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	query := `SELECT name, cover, recorded_at FROM org_history ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStateStoreFailed, "query organization history", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			entry HistoryEntry
			stamp string
		)
		if err := rows.Scan(&entry.Info.Name, &entry.Info.Cover, &stamp); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
			entry.RecordedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
