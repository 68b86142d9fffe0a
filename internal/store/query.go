package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Row is one result row keyed by column name.
type Row map[string]any

// Exec runs a mutating statement and persists before returning.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, &StoreError{Op: "exec", Query: query, Err: err}
	}
	if err := s.Persist(ctx); err != nil {
		s.log.Error("persist after exec failed", "error", err)
		return nil, err
	}
	return res, nil
}

// FetchOne returns the first matching row, or nil when nothing matches.
func (s *Store) FetchOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StoreError{Op: "fetch one", Query: query, Err: err}
	}
	defer rows.Close()

	out, err := scanRows(rows, 1)
	if err != nil {
		return nil, &StoreError{Op: "fetch one", Query: query, Err: err}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// FetchAll returns every matching row in the order the query produces them.
func (s *Store) FetchAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StoreError{Op: "fetch all", Query: query, Err: err}
	}
	defer rows.Close()

	out, err := scanRows(rows, 0)
	if err != nil {
		return nil, &StoreError{Op: "fetch all", Query: query, Err: err}
	}
	return out, nil
}

// scanRows reads up to limit rows (0 means all).
func scanRows(rows *sql.Rows, limit int) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, rows.Err()
}

// String returns the column as text; NULL becomes "".
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// StringPtr is String but keeps NULL as nil.
func (r Row) StringPtr(col string) *string {
	if r[col] == nil {
		return nil
	}
	s := r.String(col)
	return &s
}

// Int returns the column as an integer; NULL and unparsable text become 0.
func (r Row) Int(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		n, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n
	default:
		return 0
	}
}

// Float returns the column as a float; NULL and unparsable text become 0.
func (r Row) Float(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return 0
	}
}

// Bool reads a 0/1 integer column.
func (r Row) Bool(col string) bool {
	return r.Int(col) != 0
}

// Assignments collects "column = ?" pairs for a partial update. Column names
// must come from code, never from request input.
type Assignments struct {
	cols []string
	args []any
}

func (a *Assignments) Set(col string, v any) {
	a.cols = append(a.cols, col)
	a.args = append(a.args, v)
}

func (a *Assignments) Len() int { return len(a.cols) }

// update applies a to the row identified by keyCol = key. It returns
// ErrNotFound when no row matches.
func (s *Store) update(ctx context.Context, table, keyCol string, key any, a Assignments) error {
	if a.Len() == 0 {
		row, err := s.FetchOne(ctx, fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ?", table, keyCol), key)
		if err != nil {
			return err
		}
		if row == nil {
			return ErrNotFound
		}
		return nil
	}

	sets := make([]string, len(a.cols))
	for i, col := range a.cols {
		sets[i] = col + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(sets, ", "), keyCol)
	res, err := s.Exec(ctx, query, append(a.args, key)...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &StoreError{Op: "exec", Query: query, Err: err}
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
