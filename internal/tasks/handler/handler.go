package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lexportal_backend/internal/tasks/service"
	"lexportal_backend/internal/tasks/transport"
	"lexportal_backend/platform/httpkit"
	"lexportal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request payload"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid task id"
)

type Handler struct {
	service   *service.Service
	validator *validator.Validator
}

func NewHandler(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{service: svc, validator: val}
}

// List handles GET /api/v1/tasks.
func (h *Handler) List(c *gin.Context) {
	var req transport.ListTasksRequest
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

// GetByID handles GET /api/v1/tasks/:id.
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

// Create handles POST /api/v1/tasks. The authenticated agent becomes the
// task's creator.
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, resp)
}

// Update handles PUT /api/v1/tasks/:id.
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, nil)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), identity.UserID(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// Delete handles DELETE /api/v1/tasks/:id.
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

// Statuses handles GET /api/v1/task-statuses.
func (h *Handler) Statuses(c *gin.Context) {
	httpkit.OK(c, h.service.Statuses())
}

// ListComments handles GET /api/v1/comments?taskId=...
func (h *Handler) ListComments(c *gin.Context) {
	taskID, err := uuid.Parse(c.Query("taskId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "taskId query parameter is required", nil)
		return
	}

	resp, err := h.service.ListComments(c.Request.Context(), taskID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// CreateComment handles POST /api/v1/comments.
func (h *Handler) CreateComment(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, nil)
		return
	}

	resp, err := h.service.CreateComment(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, resp)
}

// DeleteComment handles DELETE /api/v1/comments/:id.
func (h *Handler) DeleteComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid comment id", nil)
		return
	}

	if httpkit.HandleError(c, h.service.DeleteComment(c.Request.Context(), id)) {
		return
	}
	httpkit.NoContent(c)
}
