package handler

import (
	"github.com/gin-gonic/gin"

	"lexportal_backend/internal/dashboard/service"
	"lexportal_backend/platform/httpkit"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// Overview handles GET /api/v1/dashboard.
func (h *Handler) Overview(c *gin.Context) {
	resp, err := h.service.Overview(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
