// Package store persists the file-to-tag association for a single
// directory in a SQLite database and exposes the mutation and query
// primitives the CLI is built on.
//
// Files and tags exist only as (path, tag) rows; a tag with no remaining
// files is indistinguishable from one that never existed. Paths and tag
// names are stored exactly as given, with no canonicalization.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// DefaultDBName is the well-known store file name in the working directory.
const DefaultDBName = "ftag.db"

// Store wraps an open SQLite connection to a tag database.
// Obtain one via Init or Open and Close it when done.
type Store struct {
	db   *sql.DB
	path string
}

// schema is the complete store layout. The composite primary key is what
// makes adds idempotent: a (path, tag) pair can exist at most once.
const schema = `
	CREATE TABLE IF NOT EXISTS file_tags (
		path TEXT NOT NULL,
		tag  TEXT NOT NULL,
		PRIMARY KEY (path, tag)
	);

	CREATE INDEX IF NOT EXISTS idx_file_tags_tag ON file_tags(tag);
`

// Init creates a new, empty store at dbPath.
// Returns ErrStoreExists if a file is already present there.
func Init(dbPath string) (*Store, error) {
	if _, err := os.Stat(dbPath); err == nil {
		return nil, fmt.Errorf("%w at %s", ErrStoreExists, dbPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking for existing store: %w", err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		os.Remove(dbPath)
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Open opens the existing store at dbPath.
// Returns ErrStoreNotFound if no file exists there and ErrCorrupt if the
// file is present but not a usable tag database.
func Open(dbPath string) (*Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("%w at %s (run 'ftag init' first)", ErrStoreNotFound, dbPath)
	}

	// Any failure to read the existing file is corruption as far as
	// callers are concerned; no recovery is attempted.
	db, err := openDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Probe the schema so a malformed file fails here rather than
	// mid-operation.
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM file_tags").Scan(&n); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// openDB opens a SQLite database with the connection settings every store
// uses.
func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes; a busy timeout lets a
	// second invocation wait briefly instead of failing outright.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return db, nil
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Stats returns the number of distinct files, distinct tags, and
// (file, tag) pairs in the store.
func (s *Store) Stats() (files, tags, pairs int, err error) {
	row := s.db.QueryRow(`
		SELECT COUNT(DISTINCT path), COUNT(DISTINCT tag), COUNT(*)
		FROM file_tags
	`)
	if err := row.Scan(&files, &tags, &pairs); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return files, tags, pairs, nil
}

// IntegrityCheck runs SQLite's quick_check and returns its verdict.
// A healthy store reports "ok".
func (s *Store) IntegrityCheck() (string, error) {
	var verdict string
	if err := s.db.QueryRow("PRAGMA quick_check").Scan(&verdict); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return verdict, nil
}
