package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// FeeHandler handles fee invoice and payment HTTP requests
type FeeHandler struct {
	service service.FeeService
}

// NewFeeHandler creates a new FeeHandler
func NewFeeHandler(service service.FeeService) *FeeHandler {
	return &FeeHandler{service: service}
}

// CreateInvoice handles POST /api/v1/fees
// @Summary Raise a fee invoice
// @Tags fees
// @Accept json
// @Produce json
// @Param request body domain.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} common.APIResponse{data=domain.FeeInvoice}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /fees [post]
func (h *FeeHandler) CreateInvoice(c *gin.Context) {
	var req domain.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	invoice, err := h.service.CreateInvoice(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, invoice)
}

// GetInvoice handles GET /api/v1/fees/:id
// @Summary Get an invoice
// @Tags fees
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} common.APIResponse{data=domain.FeeInvoice}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /fees/{id} [get]
func (h *FeeHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.service.GetInvoice(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, invoice)
}

// ListInvoices handles GET /api/v1/fees
// @Summary List invoices
// @Tags fees
// @Produce json
// @Param student_id query string false "Filter by student"
// @Param status query string false "Filter by status (pending, paid, overdue)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} common.APIResponse{data=[]domain.FeeInvoice}
// @Security BearerAuth
// @Router /fees [get]
func (h *FeeHandler) ListInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	invoices, meta, err := h.service.ListInvoices(
		c.Query("student_id"), domain.FeeStatus(c.Query("status")), page, limit)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessWithMeta(c, invoices, meta)
}

// RecordPayment handles POST /api/v1/fees/:id/payments
// @Summary Record a payment against an invoice
// @Tags fees
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body domain.RecordPaymentRequest true "Payment details"
// @Success 201 {object} common.APIResponse{data=domain.FeePayment}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /fees/{id}/payments [post]
func (h *FeeHandler) RecordPayment(c *gin.Context) {
	var req domain.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	payment, err := h.service.RecordPayment(c.Param("id"), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, payment)
}

// ListPayments handles GET /api/v1/fees/:id/payments
// @Summary Payments recorded against an invoice
// @Tags fees
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} common.APIResponse{data=[]domain.FeePayment}
// @Security BearerAuth
// @Router /fees/{id}/payments [get]
func (h *FeeHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, payments)
}
