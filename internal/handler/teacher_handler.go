package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// TeacherHandler handles teacher HTTP requests
type TeacherHandler struct {
	service service.TeacherService
}

// NewTeacherHandler creates a new TeacherHandler
func NewTeacherHandler(service service.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// Create handles POST /api/v1/teachers
// @Summary Register a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body domain.CreateTeacherRequest true "Teacher details"
// @Success 201 {object} common.APIResponse{data=domain.Teacher}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req domain.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	teacher, err := h.service.Create(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, teacher)
}

// Get handles GET /api/v1/teachers/:id
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} common.APIResponse{data=domain.Teacher}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, teacher)
}

// List handles GET /api/v1/teachers
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Param search query string false "Search by name or employee number"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} common.APIResponse{data=[]domain.Teacher}
// @Security BearerAuth
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	teachers, meta, err := h.service.List(c.Query("search"), page, limit)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessWithMeta(c, teachers, meta)
}

// Update handles PUT /api/v1/teachers/:id
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Param request body domain.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} common.APIResponse{data=domain.Teacher}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /teachers/{id} [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	var req domain.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	teacher, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, teacher)
}

// Delete handles DELETE /api/v1/teachers/:id
// @Summary Remove a teacher
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
