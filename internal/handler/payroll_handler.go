package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// PayrollHandler handles payroll HTTP requests
type PayrollHandler struct {
	service service.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(service service.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

// Create handles POST /api/v1/payroll
// @Summary Create a monthly payroll entry
// @Tags payroll
// @Accept json
// @Produce json
// @Param request body domain.CreatePayrollRequest true "Payroll details"
// @Success 201 {object} common.APIResponse{data=domain.PayrollRecord}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /payroll [post]
func (h *PayrollHandler) Create(c *gin.Context) {
	var req domain.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	record, err := h.service.Create(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, record)
}

// Get handles GET /api/v1/payroll/:id
// @Summary Get a payroll record
// @Tags payroll
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} common.APIResponse{data=domain.PayrollRecord}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /payroll/{id} [get]
func (h *PayrollHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID", err)
		return
	}
	record, err := h.service.Get(id)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, record)
}

// List handles GET /api/v1/payroll
// @Summary List payroll records
// @Description Filters by teacher or month. At least one filter is required.
// @Tags payroll
// @Produce json
// @Param teacher_id query string false "Filter by teacher"
// @Param month query string false "Filter by month (YYYY-MM)"
// @Success 200 {object} common.APIResponse{data=[]domain.PayrollRecord}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /payroll [get]
func (h *PayrollHandler) List(c *gin.Context) {
	teacherID := c.Query("teacher_id")
	month := c.Query("month")

	var records []*domain.PayrollRecord
	var err error
	switch {
	case teacherID != "":
		records, err = h.service.ListByTeacher(teacherID)
	case month != "":
		records, err = h.service.ListByMonth(month)
	default:
		common.ErrorResponse(c, http.StatusBadRequest, "teacher_id or month filter is required", nil)
		return
	}
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, records)
}

// MarkPaid handles PATCH /api/v1/payroll/:id/pay
// @Summary Mark a payroll record as paid
// @Tags payroll
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} common.APIResponse{data=domain.PayrollRecord}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /payroll/{id}/pay [patch]
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid record ID", err)
		return
	}
	record, err := h.service.MarkPaid(id)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, record)
}
