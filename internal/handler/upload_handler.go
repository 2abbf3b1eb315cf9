package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/service"
)

// UploadHandler handles standalone file uploads
type UploadHandler struct {
	service service.FileService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(service service.FileService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/v1/upload
// @Summary Upload a file
// @Description Stores a file in object storage and returns its durable reference
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param prefix formData string false "Storage prefix (default documents)"
// @Success 201 {object} common.APIResponse{data=domain.AttachmentRef}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	prefix := c.DefaultPostForm("prefix", "documents")
	ref, err := h.service.Upload(c.Request.Context(), prefix, file)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	common.CreatedResponse(c, ref)
}
