package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexportal_backend/internal/clients/service"
	"lexportal_backend/internal/clients/transport"
	"lexportal_backend/platform/httpkit"
	"lexportal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request payload"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid client id"
)

type Handler struct {
	service   *service.Service
	validator *validator.Validator
}

func NewHandler(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{service: svc, validator: val}
}

// List handles GET /api/v1/clients.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListClientsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// GetByID handles GET /api/v1/clients/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Create handles POST /api/v1/clients.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, resp)
}

// Update handles PUT /api/v1/clients/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, nil)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Delete handles DELETE /api/v1/clients/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	if httpkit.HandleError(c, h.service.Delete(c.Request.Context(), id)) {
		return
	}
	httpkit.NoContent(c)
}
