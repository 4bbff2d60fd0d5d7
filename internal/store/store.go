// Package store is a generic, session-based access layer. Its four
// operations are parametrized over a Table descriptor, so a new entity
// type needs only a descriptor and a schema table, no per-type queries.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/entitykit/entity-backend/internal/entity"
)

// Session is the slice of database/sql this layer needs. Both *sql.DB and
// *sql.Tx satisfy it; commit and rollback stay with the caller, so every
// operation here is single-shot inside whatever boundary the caller owns.
type Session interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Session = (*sql.DB)(nil)
	_ Session = (*sql.Tx)(nil)
)

const uniqueViolation = "23505"

// Create inserts v and returns the freshly persisted row, re-read by the
// id storage assigned. The id and audit columns come from column
// defaults, never from v.
func Create[T any](ctx context.Context, s Session, tb Table[T], v T) (T, error) {
	var zero T

	q := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id;",
		tb.Name, strings.Join(tb.Columns, ", "), placeholders(len(tb.Columns)),
	)

	var id uuid.UUID
	if err := s.QueryRowContext(ctx, q, tb.Values(v)...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return zero, fmt.Errorf("%s: %w", tb.Name, entity.ErrConflict)
		}
		return zero, err
	}

	created, err := GetByID(ctx, s, tb, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// The row we just inserted is gone; the session broke its
			// flush-then-read contract.
			return zero, fmt.Errorf("%s %s vanished after insert: %w", tb.Name, id, entity.ErrNotFound)
		}
		return zero, err
	}
	return created, nil
}

// GetByID returns the single row with the given id. Zero rows yield
// entity.ErrNotFound, more than one entity.ErrMultipleResults.
func GetByID[T any](ctx context.Context, s Session, tb Table[T], id uuid.UUID) (T, error) {
	var zero T

	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1;", tb.selectList(), tb.Name)
	rows, err := s.QueryContext(ctx, q, id)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%s %s: %w", tb.Name, id, entity.ErrNotFound)
	}
	v, err := tb.Scan(rows)
	if err != nil {
		return zero, err
	}
	if rows.Next() {
		return zero, fmt.Errorf("%s %s: %w", tb.Name, id, entity.ErrMultipleResults)
	}
	return v, rows.Err()
}

// ListByAttrs returns every row matching all given equality filters.
// A nil filter value means "filter absent" and is skipped entirely; there
// is no way to ask for "column IS NULL" through this path. With no
// filters the whole table comes back, in storage order.
func ListByAttrs[T any](ctx context.Context, s Session, tb Table[T], attrs map[string]any) ([]T, error) {
	var (
		where []string
		args  []any
	)
	for _, name := range sortedKeys(attrs) {
		v := attrs[name]
		if v == nil {
			continue
		}
		if !tb.HasColumn(name) {
			return nil, fmt.Errorf("%s has no filterable column %q", tb.Name, name)
		}
		args = append(args, v)
		where = append(where, fmt.Sprintf("%s = $%d", name, len(args)))
	}

	q := fmt.Sprintf("SELECT %s FROM %s", tb.selectList(), tb.Name)
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += ";"

	rows, err := s.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0, 16)
	for rows.Next() {
		v, err := tb.Scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update applies the truthy entries of patch to the row with the given id
// and unconditionally refreshes updated_at. Zero-valued entries are
// dropped, not written (see truthy); read-only columns are stripped
// before the statement is built. The mutated row is returned.
func Update[T any](ctx context.Context, s Session, tb Table[T], id uuid.UUID, patch map[string]any) (T, error) {
	var zero T

	sets := []string{"updated_at = now()"}
	args := []any{id}
	for _, name := range sortedKeys(patch) {
		if readOnlyColumn(name) {
			continue
		}
		if !tb.HasColumn(name) {
			return zero, fmt.Errorf("%s has no updatable column %q", tb.Name, name)
		}
		v := patch[name]
		if !truthy(v) {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", name, len(args)))
	}

	q := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $1 RETURNING %s;",
		tb.Name, strings.Join(sets, ", "), tb.selectList(),
	)

	v, err := tb.Scan(s.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%s %s: %w", tb.Name, id, entity.ErrNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return zero, fmt.Errorf("%s: %w", tb.Name, entity.ErrConflict)
		}
		return zero, err
	}
	return v, nil
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// sortedKeys keeps generated statements deterministic; map iteration
// order would otherwise vary per call.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
