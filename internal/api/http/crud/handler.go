// Package crud binds an entity table descriptor to the four generic REST
// endpoints. Handlers do parameter marshaling and error mapping only; all
// data access goes through internal/store.
package crud

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/entitykit/entity-backend/internal/entity"
	"github.com/entitykit/entity-backend/internal/store"
)

// Handler serves one entity type. Construct one per type and register it
// on its own route group.
type Handler[T any] struct {
	db    store.Session
	table store.Table[T]
}

func New[T any](db store.Session, table store.Table[T]) *Handler[T] {
	return &Handler[T]{db: db, table: table}
}

// Register attaches the CRUD routes to the given group.
func (h *Handler[T]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
}

func (h *Handler[T]) list(c *gin.Context) {
	// Query params matching table columns become equality filters;
	// anything else (pagination and the like) is ignored, not rejected.
	attrs := map[string]any{}
	for name, vals := range c.Request.URL.Query() {
		if !h.table.HasColumn(name) || len(vals) == 0 || vals[0] == "" {
			continue
		}
		attrs[name] = vals[0]
	}

	items, err := store.ListByAttrs(c.Request.Context(), h.db, h.table, attrs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items})
}

func (h *Handler[T]) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	item, err := store.GetByID(c.Request.Context(), h.db, h.table, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "item": item})
}

func (h *Handler[T]) create(c *gin.Context) {
	var body T
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// Any id or audit values in the body are discarded: the insert only
	// uses the table's client-settable columns.
	item, err := store.Create(c.Request.Context(), h.db, h.table, body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": item})
}

func (h *Handler[T]) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	for name := range patch {
		if !h.table.HasColumn(name) {
			delete(patch, name)
		}
	}

	item, err := store.Update(c.Request.Context(), h.db, h.table, id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "item": item})
}

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	case errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "conflict"})
	default:
		// ErrMultipleResults and storage failures land here.
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
