package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexportal_backend/internal/auth/service"
	"lexportal_backend/internal/auth/transport"
	"lexportal_backend/platform/httpkit"
	"lexportal_backend/platform/validator"
)

type Handler struct {
	service   *service.Service
	validator *validator.Validator
}

func NewHandler(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{service: svc, validator: val}
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request payload", nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", nil)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	resp, err := h.service.Me(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
