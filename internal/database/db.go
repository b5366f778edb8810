package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/studyclock/internal/util"
	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite connection that backs the task source and the
// study log.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the database file at path, creating it and its schema if
// needed.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	d := &Database{DB: conn, dbFile: path}
	if err := d.withDBContext(ctx, func(ctx context.Context) error {
		return d.DB.PingContext(ctx)
	}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			description TEXT,
			created_at DATETIME NOT NULL,
			completed_at DATETIME
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);`,
		`CREATE TABLE IF NOT EXISTS study_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			session_number INTEGER NOT NULL,
			mode TEXT NOT NULL,
			credited_minutes REAL DEFAULT 0,
			skipped INTEGER DEFAULT 0,
			ended_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_study_sessions_date ON study_sessions(date);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, query := range queries {
			if _, err := d.DB.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("create table: %w", err)
			}
		}
		return nil
	})
}

// migrate adds columns introduced after the first schema. Each step is
// idempotent.
func (d *Database) migrate(ctx context.Context) error {
	columns := []struct {
		table, column, ddl string
	}{
		{"tasks", "description", "ALTER TABLE tasks ADD COLUMN description TEXT"},
		{"study_sessions", "skipped", "ALTER TABLE study_sessions ADD COLUMN skipped INTEGER DEFAULT 0"},
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, c := range columns {
			exists, err := d.columnExists(ctx, c.table, c.column)
			if err != nil {
				return fmt.Errorf("migrate %s.%s: %w", c.table, c.column, err)
			}
			if exists {
				continue
			}
			if _, err := d.DB.ExecContext(ctx, c.ddl); err != nil {
				return fmt.Errorf("migrate %s.%s: %w", c.table, c.column, err)
			}
		}
		return nil
	})
}

func (d *Database) columnExists(ctx context.Context, table, column string) (bool, error) {
	rows, err := d.DB.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if strings.EqualFold(name, column) {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		tx, err := d.DB.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			return rollbackWithLog(tx, err)
		}
		return tx.Commit()
	})
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		util.LogError("rollback", rbErr)
	}
	return err
}
