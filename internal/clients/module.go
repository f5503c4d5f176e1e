package clients

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"lexportal_backend/internal/clients/handler"
	"lexportal_backend/internal/clients/repository"
	"lexportal_backend/internal/clients/service"
	"lexportal_backend/internal/http"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.NewService(repo, log)
	return &Module{handler: handler.NewHandler(svc, val)}
}

func (m *Module) Name() string { return "clients" }

func (m *Module) RegisterRoutes(rc *http.RouterContext) {
	clients := rc.Protected.Group("/clients")
	{
		clients.GET("", m.handler.List)
		clients.POST("", m.handler.Create)
		clients.GET("/:id", m.handler.GetByID)
		clients.PUT("/:id", m.handler.Update)
		clients.DELETE("/:id", m.handler.Delete)
	}
}
