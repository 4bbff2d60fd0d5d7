package store

import "strings"

// Scanner is the scanning surface shared by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Table maps a concrete entity type onto its storage table. Columns lists
// only the client-settable attributes, in declaration order; id and the
// audit columns are owned by storage and are always selected first.
//
// Scan must read id, created_at, updated_at and then Columns in order.
// Values must return the values for Columns in the same order.
type Table[T any] struct {
	Name    string
	Columns []string
	Scan    func(row Scanner) (T, error)
	Values  func(v T) []any
}

// HasColumn reports whether name is a client-settable column of the table.
func (t Table[T]) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t Table[T]) selectList() string {
	return "id, created_at, updated_at, " + strings.Join(t.Columns, ", ")
}

// readOnlyColumn reports whether name is assigned by storage and must
// never appear in an update set.
func readOnlyColumn(name string) bool {
	return name == "id" || name == "created_at" || name == "updated_at"
}

// truthy reports whether a patch value carries a change. Zero values
// (false, 0, "", nil, empty slice or map) count as "not supplied", so a
// partial update cannot clear a field to its zero value through this
// path. Callers that need that must issue a typed update of their own.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64: // JSON numbers decode to float64
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	}
	return true
}
