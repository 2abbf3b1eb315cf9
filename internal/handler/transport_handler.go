package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// TransportHandler handles transport route HTTP requests
type TransportHandler struct {
	service service.TransportService
}

// NewTransportHandler creates a new TransportHandler
func NewTransportHandler(service service.TransportService) *TransportHandler {
	return &TransportHandler{service: service}
}

// CreateRoute handles POST /api/v1/transport/routes
// @Summary Register a bus route
// @Tags transport
// @Accept json
// @Produce json
// @Param request body domain.CreateRouteRequest true "Route details"
// @Success 201 {object} common.APIResponse{data=domain.TransportRoute}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /transport/routes [post]
func (h *TransportHandler) CreateRoute(c *gin.Context) {
	var req domain.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	route, err := h.service.CreateRoute(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, route)
}

// GetRoute handles GET /api/v1/transport/routes/:id
// @Summary Get a route
// @Tags transport
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} common.APIResponse{data=domain.TransportRoute}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /transport/routes/{id} [get]
func (h *TransportHandler) GetRoute(c *gin.Context) {
	route, err := h.service.GetRoute(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, route)
}

// ListRoutes handles GET /api/v1/transport/routes
// @Summary List routes
// @Tags transport
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.TransportRoute}
// @Security BearerAuth
// @Router /transport/routes [get]
func (h *TransportHandler) ListRoutes(c *gin.Context) {
	routes, err := h.service.ListRoutes()
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, routes)
}

// DeleteRoute handles DELETE /api/v1/transport/routes/:id
// @Summary Remove a route and its assignments
// @Tags transport
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /transport/routes/{id} [delete]
func (h *TransportHandler) DeleteRoute(c *gin.Context) {
	if err := h.service.DeleteRoute(c.Param("id")); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}

// AssignStudent handles POST /api/v1/transport/routes/:id/assignments
// @Summary Put a student on a route
// @Description Fails when the route is at capacity or the student already rides a route
// @Tags transport
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body domain.AssignStudentRequest true "Assignment"
// @Success 201 {object} common.APIResponse{data=domain.TransportAssignment}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /transport/routes/{id}/assignments [post]
func (h *TransportHandler) AssignStudent(c *gin.Context) {
	var req domain.AssignStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	a, err := h.service.AssignStudent(c.Param("id"), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, a)
}

// ListAssignments handles GET /api/v1/transport/routes/:id/assignments
// @Summary Students assigned to a route
// @Tags transport
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} common.APIResponse{data=[]domain.TransportAssignment}
// @Security BearerAuth
// @Router /transport/routes/{id}/assignments [get]
func (h *TransportHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.service.ListAssignments(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, assignments)
}

// RemoveAssignment handles DELETE /api/v1/transport/assignments/:id
// @Summary Take a student off a route
// @Tags transport
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /transport/assignments/{id} [delete]
func (h *TransportHandler) RemoveAssignment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID", err)
		return
	}
	if err := h.service.RemoveAssignment(id); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
