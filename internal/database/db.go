// Package database persists the allocation ledger in SQLite: members,
// projects, allocations, and settings. Derived data (snapshots,
// conflicts, reports) is never stored; the engine recomputes it from the
// rows this package serves.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle. All methods take a context and
// return wrapped errors; none of them log.
type Database struct {
	DB *sql.DB
}

// Open initializes the database connection and schema.
func Open(ctx context.Context, filepath string) (*Database, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS members (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			hours_per_day REAL NOT NULL,
			working_days TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			team TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS allocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			member_id INTEGER NOT NULL,
			project_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			allocated_hours REAL NOT NULL DEFAULT 0,
			logged_hours REAL NOT NULL DEFAULT 0,
			UNIQUE(member_id, project_id, date),
			FOREIGN KEY(member_id) REFERENCES members(id),
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_allocations_member_date ON allocations(member_id, date);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating table: %w: %s", err, query)
		}
	}
	return nil
}
