package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// ScheduleHandler handles timetable HTTP requests
type ScheduleHandler struct {
	service service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Create handles POST /api/v1/schedule
// @Summary Add a timetable slot
// @Description Rejects slots that collide with an existing class or teacher booking
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body domain.CreateScheduleEntryRequest true "Timetable slot"
// @Success 201 {object} common.APIResponse{data=domain.ScheduleEntry}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /schedule [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req domain.CreateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	entry, err := h.service.CreateEntry(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, entry)
}

// ByClass handles GET /api/v1/schedule/class/:class_id
// @Summary Timetable for a class
// @Tags schedule
// @Produce json
// @Param class_id path string true "Class ID"
// @Success 200 {object} common.APIResponse{data=[]domain.ScheduleEntry}
// @Security BearerAuth
// @Router /schedule/class/{class_id} [get]
func (h *ScheduleHandler) ByClass(c *gin.Context) {
	entries, err := h.service.ByClass(c.Request.Context(), c.Param("class_id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, entries)
}

// ByTeacher handles GET /api/v1/schedule/teacher/:teacher_id
// @Summary Timetable for a teacher
// @Tags schedule
// @Produce json
// @Param teacher_id path string true "Teacher ID"
// @Success 200 {object} common.APIResponse{data=[]domain.ScheduleEntry}
// @Security BearerAuth
// @Router /schedule/teacher/{teacher_id} [get]
func (h *ScheduleHandler) ByTeacher(c *gin.Context) {
	entries, err := h.service.ByTeacher(c.Request.Context(), c.Param("teacher_id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, entries)
}

// Delete handles DELETE /api/v1/schedule/:id
// @Summary Remove a timetable slot
// @Tags schedule
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /schedule/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid entry ID", err)
		return
	}
	if err := h.service.DeleteEntry(id); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
