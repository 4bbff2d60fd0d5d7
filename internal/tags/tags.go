// Package tags is a demo entity with a unique name, used to exercise the
// conflict path of the generic access layer.
package tags

import (
	"github.com/entitykit/entity-backend/internal/entity"
	"github.com/entitykit/entity-backend/internal/store"
)

// Tag is a named label. Names are unique per schema.
type Tag struct {
	entity.Base
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Table maps Tag onto the tags table.
func Table() store.Table[Tag] {
	return store.Table[Tag]{
		Name:    "tags",
		Columns: []string{"name", "color"},
		Scan: func(row store.Scanner) (Tag, error) {
			var tg Tag
			err := row.Scan(&tg.ID, &tg.CreatedAt, &tg.UpdatedAt, &tg.Name, &tg.Color)
			return tg, err
		},
		Values: func(tg Tag) []any {
			return []any{tg.Name, tg.Color}
		},
	}
}
