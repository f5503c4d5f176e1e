package tasks

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"lexportal_backend/internal/http"
	"lexportal_backend/internal/tasks/handler"
	"lexportal_backend/internal/tasks/repository"
	"lexportal_backend/internal/tasks/service"
	platformevents "lexportal_backend/platform/events"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/validator"
)

type Module struct {
	handler *handler.Handler
	repo    *repository.Repo
}

func NewModule(pool *pgxpool.Pool, clients service.ClientDirectory, bus platformevents.Bus, scheduler service.ReminderScheduler, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.NewService(repo, clients, bus, scheduler, log)
	return &Module{
		handler: handler.NewHandler(svc, val),
		repo:    repo,
	}
}

func (m *Module) Name() string { return "tasks" }

// Repository exposes the task store for background consumers such as the
// reminder worker.
func (m *Module) Repository() repository.Repository { return m.repo }

func (m *Module) RegisterRoutes(rc *http.RouterContext) {
	tasks := rc.Protected.Group("/tasks")
	{
		tasks.GET("", m.handler.List)
		tasks.POST("", m.handler.Create)
		tasks.GET("/:id", m.handler.GetByID)
		tasks.PUT("/:id", m.handler.Update)
		tasks.DELETE("/:id", m.handler.Delete)
	}

	rc.Protected.GET("/task-statuses", m.handler.Statuses)

	comments := rc.Protected.Group("/comments")
	{
		comments.GET("", m.handler.ListComments)
		comments.POST("", m.handler.CreateComment)
		comments.DELETE("/:id", m.handler.DeleteComment)
	}
}
