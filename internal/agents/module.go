// Package agents provides the staff bounded context module: agent CRUD and
// the fixed rank hierarchy that constrains who may supervise whom.
package agents

import (
	"lexportal_backend/internal/agents/handler"
	"lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/agents/service"
	apphttp "lexportal_backend/internal/http"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the agents bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the agents module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "agents"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts agent routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/agents")
	group.GET("", m.handler.List)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.GetByID)
	group.PUT("/:id", m.handler.Update)
	group.DELETE("/:id", m.handler.Delete)

	// The rank hierarchy lives under its own prefix so the static paths do
	// not collide with the :id wildcard above.
	types := ctx.Protected.Group("/agent-types")
	types.GET("", m.handler.Types)
	types.GET("/:type/subordinates", m.handler.EligibleSubordinates)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
