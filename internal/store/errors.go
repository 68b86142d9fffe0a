package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by the typed accessors when no row matches.
var ErrNotFound = errors.New("not found")

var errCheckpointBusy = errors.New("wal checkpoint could not complete")

// StoreError wraps every failure coming out of the engine. The underlying
// driver error stays reachable through errors.Is / errors.As.
type StoreError struct {
	Op    string
	Query string
	Err   error
}

func (e *StoreError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("store %s: %v (query: %s)", e.Op, e.Err, e.Query)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsConstraint reports whether err is a constraint violation, e.g. a
// duplicate unique email.
func IsConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
