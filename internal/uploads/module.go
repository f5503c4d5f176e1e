package uploads

import (
	"lexportal_backend/internal/adapters/storage"
	"lexportal_backend/internal/http"
	"lexportal_backend/internal/uploads/handler"
	"lexportal_backend/internal/uploads/service"
	"lexportal_backend/platform/logger"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(store storage.StorageService, bucket string, log *logger.Logger) *Module {
	svc := service.NewService(store, bucket, log)
	return &Module{handler: handler.NewHandler(svc)}
}

func (m *Module) Name() string { return "uploads" }

func (m *Module) RegisterRoutes(rc *http.RouterContext) {
	uploads := rc.Protected.Group("/uploads")
	{
		uploads.POST("", m.handler.Upload)
		uploads.GET("/:key", m.handler.Download)
	}
}
