package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/service"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/v1/dashboard
// @Summary Headline counts for the admin dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} common.APIResponse{data=service.DashboardSummary}
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, summary)
}
