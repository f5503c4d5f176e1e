package dashboard

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"lexportal_backend/internal/dashboard/handler"
	"lexportal_backend/internal/dashboard/repository"
	"lexportal_backend/internal/dashboard/service"
	"lexportal_backend/internal/http"
	"lexportal_backend/platform/logger"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.NewService(repo, log)
	return &Module{handler: handler.NewHandler(svc)}
}

func (m *Module) Name() string { return "dashboard" }

func (m *Module) RegisterRoutes(rc *http.RouterContext) {
	rc.Protected.GET("/dashboard", m.handler.Overview)
}
