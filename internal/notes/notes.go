// Package notes is a demo entity wired through the generic access layer.
package notes

import (
	"github.com/entitykit/entity-backend/internal/entity"
	"github.com/entitykit/entity-backend/internal/store"
)

// Note is a short text record with a pin flag and a view counter.
type Note struct {
	entity.Base
	Title  string `json:"title"`
	Body   string `json:"body"`
	Pinned bool   `json:"pinned"`
	Views  int    `json:"views"`
}

// Table maps Note onto the notes table.
func Table() store.Table[Note] {
	return store.Table[Note]{
		Name:    "notes",
		Columns: []string{"title", "body", "pinned", "views"},
		Scan: func(row store.Scanner) (Note, error) {
			var n Note
			err := row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Title, &n.Body, &n.Pinned, &n.Views)
			return n, err
		},
		Values: func(n Note) []any {
			return []any{n.Title, n.Body, n.Pinned, n.Views}
		},
	}
}
