package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	agentsrepo "lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/auth/handler"
	"lexportal_backend/internal/auth/service"
	"lexportal_backend/internal/http"
	"lexportal_backend/platform/config"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := agentsrepo.New(pool)
	svc := service.NewService(repo, cfg, log)
	return &Module{
		handler: handler.NewHandler(svc, val),
		service: svc,
	}
}

func (m *Module) Name() string { return "auth" }

// BootstrapOwner seeds the initial owner account on startup when the agents
// table is empty.
func (m *Module) BootstrapOwner(ctx context.Context, cfg config.BootstrapConfig) error {
	return m.service.BootstrapOwner(ctx, cfg)
}

func (m *Module) RegisterRoutes(rc *http.RouterContext) {
	auth := rc.V1.Group("/auth")
	{
		auth.POST("/login", rc.AuthRateLimiter.RateLimit(), m.handler.Login)
		auth.GET("/me", rc.AuthMiddleware, m.handler.Me)
	}
}
