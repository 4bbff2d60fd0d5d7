package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/entitykit/entity-backend/internal/api/http"
	"github.com/entitykit/entity-backend/internal/api/http/crud"
	"github.com/entitykit/entity-backend/internal/api/http/middleware"
	"github.com/entitykit/entity-backend/internal/notes"
	"github.com/entitykit/entity-backend/internal/tags"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	APIKey      string
	RatePerSec  float64
	RateBurst   int

	DB *sql.DB
}

// BuildRouter assembles the full HTTP surface: health endpoints outside
// the gate, one CRUD group per entity type behind it.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.APIKey(dep.APIKey))
	api.Use(middleware.RateLimit(dep.RatePerSec, dep.RateBurst))

	crud.New(dep.DB, notes.Table()).Register(api.Group("/notes"))
	crud.New(dep.DB, tags.Table()).Register(api.Group("/tags"))

	return r
}
