// ABOUTME: Database creation and connection management for didi.
// ABOUTME: Owns the single-table SQLite schema and store-level errors.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var (
	ErrNotFound      = errors.New("diary database not found")
	ErrAlreadyExists = errors.New("diary database already exists")
	ErrStorage       = errors.New("storage error")
)

const schema = `
CREATE TABLE entries (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    hash     BLOB    NOT NULL,
    date     TEXT    NOT NULL,
    keywords TEXT    NOT NULL,
    title    TEXT    NOT NULL,
    content  TEXT    NOT NULL,
    hidden   INTEGER NOT NULL
);
`

// Initialize creates a new, empty diary at path. It refuses to touch an
// existing file.
func Initialize(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrStorage, path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %w", ErrStorage, err)
	}

	db, err := connect(path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		_ = os.Remove(path) // Best-effort cleanup of the half-created file
		return nil, fmt.Errorf("%w: create tables: %w", ErrStorage, err)
	}

	return db, nil
}

// Open connects to an existing diary at path.
func Open(path string) (*sql.DB, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrStorage, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrStorage, path)
	}

	db, err := connect(path)
	if err != nil {
		return nil, err
	}

	// Fails on files that are not SQLite databases or lack the entries table.
	if _, err := db.Exec(`SELECT 1 FROM entries LIMIT 1`); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s is not a diary database: %w", ErrStorage, path, err)
	}

	return db, nil
}

func connect(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", ErrStorage, err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: connect to database: %w", ErrStorage, err)
	}

	return db, nil
}
