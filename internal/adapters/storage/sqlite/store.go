// Package sqlite implements ports.BoardStore on an embedded SQLite database
// using the pure-Go modernc.org/sqlite driver.
//
// Transactions are opened with BEGIN IMMEDIATE so that a write transaction
// holds the database write lock from its first statement. Together with WAL
// mode this gives one writer and any number of concurrent readers.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/config"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// Compile-time checks.
var (
	_ ports.BoardStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	driverName         = "sqlite"
	defaultBusyTimeout = 5 * time.Second
	dateLayout         = time.RFC3339Nano
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasklists (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		position INTEGER NOT NULL CHECK (position >= 0),
		task_ids TEXT NOT NULL DEFAULT '[]'
	);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		text        TEXT NOT NULL,
		position    INTEGER NOT NULL CHECK (position >= 0),
		tasklist_id TEXT NOT NULL REFERENCES tasklists(id),
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_tasklist ON tasks(tasklist_id, position);`,
}

// Store is a SQLite-backed board store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at cfg.Path and applies the
// schema. The parent directory is created when missing.
func Open(ctx context.Context, cfg config.SQLiteConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, &domain.StorageError{Op: "sqlite.open", Err: err}
		}
	}

	db, err := sql.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, &domain.StorageError{Op: "sqlite.open", Err: err}
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, &domain.StorageError{Op: "sqlite.migrate", Err: err}
		}
	}

	return &Store{db: db}, nil
}

// dsn builds a connection string whose pragmas are applied to every pooled
// connection, not only the first one.
func dsn(cfg config.SQLiteConfig) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}

	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Set("_txlock", "immediate")

	return "file:" + cfg.Path + "?" + q.Encode()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &domain.StorageError{Op: "sqlite.ping", Err: err}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}

// WithinTx implements ports.BoardStore.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.BoardTx) error) error {
	return s.run(ctx, false, func(ctx context.Context, t *tx) error { return fn(ctx, t) })
}

// View implements ports.BoardStore.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, r ports.BoardReader) error) error {
	return s.run(ctx, true, func(ctx context.Context, t *tx) error { return fn(ctx, t) })
}

func (s *Store) run(ctx context.Context, readOnly bool, fn func(context.Context, *tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: readOnly})
	if err != nil {
		return &domain.StorageError{Op: "sqlite.begin", Err: err}
	}
	defer func() { _ = sqlTx.Rollback() }()

	if err := fn(ctx, &tx{tx: sqlTx}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return &domain.StorageError{Op: "sqlite.commit", Err: err}
	}
	return nil
}

// Snapshot returns a canonical dump of every stored row. Two snapshots are
// byte-for-byte equal exactly when the stored board is identical.
func (s *Store) Snapshot(ctx context.Context) ([]byte, error) {
	var (
		lists []board.List
		items []board.Item
	)
	err := s.View(ctx, func(ctx context.Context, r ports.BoardReader) error {
		var err error
		if lists, err = r.Lists(ctx); err != nil {
			return err
		}
		items, err = r.Items(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		Lists []board.List `json:"tasklists"`
		Items []board.Item `json:"tasks"`
	}{lists, items})
}

type tx struct {
	tx *sql.Tx
}

func (t *tx) Lists(ctx context.Context) ([]board.List, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT id, name, position, task_ids FROM tasklists ORDER BY position, id`)
	if err != nil {
		return nil, &domain.StorageError{Op: "sqlite.lists", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var out []board.List
	for rows.Next() {
		var (
			l   board.List
			ids string
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Position, &ids); err != nil {
			return nil, &domain.StorageError{Op: "sqlite.lists", Err: err}
		}
		if err := json.Unmarshal([]byte(ids), &l.ItemIDs); err != nil {
			return nil, &domain.StorageError{Op: "sqlite.lists", Err: fmt.Errorf("tasklist %q task_ids: %w", l.ID, err)}
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "sqlite.lists", Err: err}
	}
	return out, nil
}

func (t *tx) Items(ctx context.Context) ([]board.Item, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT id, text, position, tasklist_id, start_date, end_date FROM tasks ORDER BY tasklist_id, position, id`)
	if err != nil {
		return nil, &domain.StorageError{Op: "sqlite.items", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var out []board.Item
	for rows.Next() {
		var (
			it         board.Item
			start, end string
		)
		if err := rows.Scan(&it.ID, &it.Text, &it.Position, &it.ListID, &start, &end); err != nil {
			return nil, &domain.StorageError{Op: "sqlite.items", Err: err}
		}
		if it.Start, err = time.Parse(dateLayout, start); err != nil {
			return nil, &domain.StorageError{Op: "sqlite.items", Err: fmt.Errorf("task %q start_date: %w", it.ID, err)}
		}
		if it.End, err = time.Parse(dateLayout, end); err != nil {
			return nil, &domain.StorageError{Op: "sqlite.items", Err: fmt.Errorf("task %q end_date: %w", it.ID, err)}
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "sqlite.items", Err: err}
	}
	return out, nil
}

func (t *tx) InsertList(ctx context.Context, l board.List) error {
	ids, err := encodeIDs(l.ItemIDs)
	if err != nil {
		return &domain.StorageError{Op: "sqlite.insert_list", Err: err}
	}
	_, err = t.tx.ExecContext(ctx,
		`INSERT INTO tasklists(id, name, position, task_ids) VALUES(?, ?, ?, ?)`,
		l.ID, l.Name, l.Position, ids)
	if err != nil {
		return &domain.StorageError{Op: "sqlite.insert_list", Err: err}
	}
	return nil
}

func (t *tx) UpdateList(ctx context.Context, l board.List) error {
	ids, err := encodeIDs(l.ItemIDs)
	if err != nil {
		return &domain.StorageError{Op: "sqlite.update_list", Err: err}
	}
	res, err := t.tx.ExecContext(ctx,
		`UPDATE tasklists SET name = ?, position = ?, task_ids = ? WHERE id = ?`,
		l.Name, l.Position, ids, l.ID)
	if err != nil {
		return &domain.StorageError{Op: "sqlite.update_list", Err: err}
	}
	return expectOne(res, "sqlite.update_list", l.ID)
}

func (t *tx) InsertItem(ctx context.Context, it board.Item) error {
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO tasks(id, text, position, tasklist_id, start_date, end_date) VALUES(?, ?, ?, ?, ?, ?)`,
		it.ID, it.Text, it.Position, it.ListID, formatDate(it.Start), formatDate(it.End))
	if err != nil {
		return &domain.StorageError{Op: "sqlite.insert_item", Err: err}
	}
	return nil
}

func (t *tx) UpdateItem(ctx context.Context, it board.Item) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE tasks SET text = ?, position = ?, tasklist_id = ?, start_date = ?, end_date = ? WHERE id = ?`,
		it.Text, it.Position, it.ListID, formatDate(it.Start), formatDate(it.End), it.ID)
	if err != nil {
		return &domain.StorageError{Op: "sqlite.update_item", Err: err}
	}
	return expectOne(res, "sqlite.update_item", it.ID)
}

func (t *tx) DeleteItem(ctx context.Context, id string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return &domain.StorageError{Op: "sqlite.delete_item", Err: err}
	}
	return expectOne(res, "sqlite.delete_item", id)
}

func expectOne(res sql.Result, op, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &domain.StorageError{Op: op, Err: err}
	}
	if n != 1 {
		return &domain.StorageError{Op: op, Err: fmt.Errorf("row %q: %w", id, domain.ErrNotFound)}
	}
	return nil
}

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encoding task_ids: %w", err)
	}
	return string(raw), nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
