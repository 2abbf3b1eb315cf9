package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// ClassHandler handles class HTTP requests
type ClassHandler struct {
	service service.ClassService
}

// NewClassHandler creates a new ClassHandler
func NewClassHandler(service service.ClassService) *ClassHandler {
	return &ClassHandler{service: service}
}

// Create handles POST /api/v1/classes
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body domain.CreateClassRequest true "Class details"
// @Success 201 {object} common.APIResponse{data=domain.SchoolClass}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req domain.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	class, err := h.service.Create(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, class)
}

// Get handles GET /api/v1/classes/:id
// @Summary Get a class
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} common.APIResponse{data=domain.SchoolClass}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	class, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, class)
}

// List handles GET /api/v1/classes
// @Summary List classes
// @Tags classes
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.SchoolClass}
// @Security BearerAuth
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.service.List()
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, classes)
}

// Update handles PUT /api/v1/classes/:id
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param request body domain.CreateClassRequest true "Class details"
// @Success 200 {object} common.APIResponse{data=domain.SchoolClass}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	var req domain.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	class, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, class)
}

// Delete handles DELETE /api/v1/classes/:id
// @Summary Remove a class
// @Tags classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
