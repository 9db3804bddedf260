// Package db provides SQLite database operations for stored text nodes and conversions.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
	path string
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute pragma %q: %w", pragma, err)
		}
	}

	d := &DB{DB: db, path: path}

	// Run migrations
	if err := d.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Migrate runs database migrations.
func (d *DB) Migrate() error {
	schema := `
	-- Text nodes
	CREATE TABLE IF NOT EXISTS nodes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Font runs covering each node's text
	CREATE TABLE IF NOT EXISTS node_runs (
		node_id TEXT NOT NULL,
		start_offset INTEGER NOT NULL,
		end_offset INTEGER NOT NULL,
		family TEXT NOT NULL,
		style TEXT NOT NULL,
		PRIMARY KEY (node_id, start_offset),
		FOREIGN KEY (node_id) REFERENCES nodes(id) ON DELETE CASCADE
	);

	-- Conversion requests
	CREATE TABLE IF NOT EXISTS conversions (
		id TEXT PRIMARY KEY,
		node_ids TEXT NOT NULL,
		fixation_strength INTEGER NOT NULL,
		contrast INTEGER NOT NULL,
		status TEXT DEFAULT 'pending',
		converted INTEGER DEFAULT 0,
		skipped INTEGER DEFAULT 0,
		failed INTEGER DEFAULT 0,
		attempts INTEGER DEFAULT 0,
		error TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		finished_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_conversions_status ON conversions(status);

	-- Notices raised while converting
	CREATE TABLE IF NOT EXISTS conversion_events (
		id TEXT PRIMARY KEY,
		conversion_id TEXT NOT NULL,
		node_id TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL,
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (conversion_id) REFERENCES conversions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_events_conversion ON conversion_events(conversion_id);
	CREATE INDEX IF NOT EXISTS idx_events_kind ON conversion_events(kind);

	-- goqite message queue
	CREATE TABLE IF NOT EXISTS goqite (
		id TEXT PRIMARY KEY DEFAULT ('m_' || lower(hex(randomblob(16)))),
		created TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ')),
		updated TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ')),
		queue TEXT NOT NULL,
		body BLOB NOT NULL,
		timeout TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ')),
		received INTEGER NOT NULL DEFAULT 0,
		priority INTEGER NOT NULL DEFAULT 0
	) STRICT;

	CREATE TRIGGER IF NOT EXISTS goqite_updated_timestamp AFTER UPDATE ON goqite BEGIN
		UPDATE goqite SET updated = strftime('%Y-%m-%dT%H:%M:%fZ') WHERE id = old.id;
	END;

	CREATE INDEX IF NOT EXISTS goqite_queue_priority_created_idx ON goqite (queue, priority DESC, created);
	`

	if _, err := d.Exec(schema); err != nil {
		return err
	}

	// Databases created before conversions tracked attempts
	if _, err := d.Exec("ALTER TABLE conversions ADD COLUMN attempts INTEGER DEFAULT 0"); err != nil &&
		!strings.Contains(err.Error(), "duplicate column") {
		return fmt.Errorf("add conversions.attempts: %w", err)
	}
	return nil
}

// SqlConn returns a go-zero sqlx.SqlConn wrapping the underlying database.
// This provides automatic circuit breaking and OpenTelemetry tracing on every query.
func (d *DB) SqlConn() sqlx.SqlConn {
	return sqlx.NewSqlConnFromDB(d.DB, sqlx.WithAcceptable(sqliteAcceptable))
}

// sqliteAcceptable tells the circuit breaker that "database is locked" errors
// are transient (SQLite WAL contention) and should not trip the breaker.
func sqliteAcceptable(err error) bool {
	return err == nil || strings.Contains(err.Error(), "database is locked")
}

