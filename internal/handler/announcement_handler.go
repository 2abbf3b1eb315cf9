package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/middleware"
	"github.com/schoolhub/sims-backend/internal/service"
)

// AnnouncementHandler handles announcement HTTP requests
type AnnouncementHandler struct {
	service service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(service service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// Create handles POST /api/v1/announcements
// @Summary Publish an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body domain.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} common.APIResponse{data=domain.Announcement}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req domain.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	a, err := h.service.Create(middleware.GetUserID(c), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, a)
}

// Get handles GET /api/v1/announcements/:id
// @Summary Get an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} common.APIResponse{data=domain.Announcement}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, a)
}

// List handles GET /api/v1/announcements
// @Summary List announcements
// @Description Lists announcements visible to the caller's role
// @Tags announcements
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} common.APIResponse{data=[]domain.Announcement}
// @Security BearerAuth
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	audience := audienceForRole(middleware.GetUserRole(c))
	items, meta, err := h.service.List(c.Request.Context(), audience, page, limit)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessWithMeta(c, items, meta)
}

// Update handles PUT /api/v1/announcements/:id
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body domain.CreateAnnouncementRequest true "Announcement"
// @Success 200 {object} common.APIResponse{data=domain.Announcement}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req domain.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	a, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, a)
}

// Delete handles DELETE /api/v1/announcements/:id
// @Summary Remove an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}

// audienceForRole maps a user role to the announcement audience it sees.
// Admins and accountants see everything.
func audienceForRole(role string) string {
	switch role {
	case domain.RoleTeacher:
		return domain.AudienceTeachers
	case domain.RoleStudent:
		return domain.AudienceStudents
	default:
		return ""
	}
}
