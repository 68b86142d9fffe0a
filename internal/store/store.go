// Package store keeps the planner's relational data in a single SQLite file
// and exposes a small query façade over it.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/shreywv2007/StudyFlow/internal/logger"
)

// MemoryPath opens a private in-memory store that is discarded on Close.
const MemoryPath = ":memory:"

//go:embed schema.sql
var schema string

// Store owns the database handle and its backing file.
type Store struct {
	db   *sql.DB
	path string
	log  *logger.Logger
}

// Open loads the store at path, creating the file and schema when it does not
// exist yet. An unreadable or corrupt file is reported as an error.
func Open(ctx context.Context, path string, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("db_path", path)

	existed := false
	if path != MemoryPath {
		if _, err := os.Stat(path); err == nil {
			existed = true
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, &StoreError{Op: "load", Err: err}
		}
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}
	// One connection: statements run one after another, and an in-memory
	// database lives exactly as long as that connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &StoreError{Op: "load", Err: err}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, &StoreError{Op: "load", Query: "schema", Err: err}
	}

	s := &Store{db: db, path: path, log: log}
	if err := s.Persist(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if existed {
		log.Info("store loaded from file")
	} else {
		log.Info("store initialised with empty schema")
	}
	return s, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return MemoryPath + "?_foreign_keys=0"
	}
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=FULL&_busy_timeout=5000&_foreign_keys=0", path)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Persist folds the write-ahead log back into the database file so the file
// alone holds the complete state. Committed writes are already durable before
// this runs; Persist keeps the single-file layout.
func (s *Store) Persist(ctx context.Context) error {
	if s.path == MemoryPath {
		return nil
	}
	var busy, frames, checkpointed int
	err := s.db.QueryRowContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)").Scan(&busy, &frames, &checkpointed)
	if err != nil {
		return &StoreError{Op: "persist", Err: err}
	}
	if busy != 0 {
		return &StoreError{Op: "persist", Err: errCheckpointBusy}
	}
	return nil
}

// Snapshot writes a complete, consistent copy of the store to dst. dst must
// not exist yet.
func (s *Store) Snapshot(ctx context.Context, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return &StoreError{Op: "snapshot", Err: fmt.Errorf("%s already exists", dst)}
	}
	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", dst); err != nil {
		return &StoreError{Op: "snapshot", Query: "VACUUM INTO", Err: err}
	}
	return nil
}

// Close checkpoints and closes the database.
func (s *Store) Close() error {
	if err := s.Persist(context.Background()); err != nil {
		s.log.Warn("final persist failed", "error", err)
	}
	return s.db.Close()
}
