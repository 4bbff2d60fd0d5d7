package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Base carries the columns every persisted entity shares. Embed it in a
// concrete entity type to pick up the id and audit timestamps. All three
// fields are assigned by storage; values supplied by clients are ignored.
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	// ErrNotFound signals that a lookup by id matched no row.
	ErrNotFound = errors.New("not found")

	// ErrMultipleResults signals more than one row for a single id.
	// Ids are unique by schema, so this is a storage integrity breach.
	ErrMultipleResults = errors.New("multiple results for one id")

	// ErrConflict signals a unique-constraint violation.
	ErrConflict = errors.New("conflict")
)
