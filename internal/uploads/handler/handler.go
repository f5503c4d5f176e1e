package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexportal_backend/internal/uploads/service"
	"lexportal_backend/platform/httpkit"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// Upload handles POST /api/v1/uploads. The file is sent as the "file" part
// of a multipart form.
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "a file form field is required", nil)
		return
	}

	resp, err := h.service.Upload(c.Request.Context(), header)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, resp)
}

// Download handles GET /api/v1/uploads/:key, streaming the object back.
func (h *Handler) Download(c *gin.Context) {
	key := c.Param("key")

	reader, info, err := h.service.Open(c.Request.Context(), key)
	if httpkit.HandleError(c, err) {
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.FileName))
	c.Header("Content-Type", info.ContentType)
	if info.SizeBytes > 0 {
		c.Header("Content-Length", fmt.Sprintf("%d", info.SizeBytes))
	}

	c.Status(http.StatusOK)
	// the response is already committed, a copy failure here can only be
	// the client hanging up
	_, _ = io.Copy(c.Writer, reader)
}
