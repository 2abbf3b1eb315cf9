package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// StudentHandler handles student HTTP requests
type StudentHandler struct {
	service service.StudentService
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(service service.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Create handles POST /api/v1/students
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body domain.CreateStudentRequest true "Student details"
// @Success 201 {object} common.APIResponse{data=domain.Student}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req domain.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	student, err := h.service.Create(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, student)
}

// Get handles GET /api/v1/students/:id
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} common.APIResponse{data=domain.Student}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, student)
}

// List handles GET /api/v1/students
// @Summary List students
// @Tags students
// @Produce json
// @Param class_id query string false "Filter by class"
// @Param search query string false "Search by name or admission number"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} common.APIResponse{data=[]domain.Student}
// @Security BearerAuth
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	students, meta, err := h.service.List(c.Query("class_id"), c.Query("search"), page, limit)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessWithMeta(c, students, meta)
}

// Update handles PUT /api/v1/students/:id
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body domain.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} common.APIResponse{data=domain.Student}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req domain.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	student, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, student)
}

// Delete handles DELETE /api/v1/students/:id
// @Summary Remove a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
