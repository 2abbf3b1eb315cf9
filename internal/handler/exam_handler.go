package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/service"
)

// ExamHandler handles exam and result HTTP requests
type ExamHandler struct {
	service service.ExamService
}

// NewExamHandler creates a new ExamHandler
func NewExamHandler(service service.ExamService) *ExamHandler {
	return &ExamHandler{service: service}
}

// Create handles POST /api/v1/exams
// @Summary Schedule an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body domain.CreateExamRequest true "Exam details"
// @Success 201 {object} common.APIResponse{data=domain.Exam}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	var req domain.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	exam, err := h.service.Create(&req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, exam)
}

// Get handles GET /api/v1/exams/:id
// @Summary Get an exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} common.APIResponse{data=domain.Exam}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /exams/{id} [get]
func (h *ExamHandler) Get(c *gin.Context) {
	exam, err := h.service.Get(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, exam)
}

// List handles GET /api/v1/exams
// @Summary List exams
// @Tags exams
// @Produce json
// @Param class_id query string false "Filter by class"
// @Param term query string false "Filter by term"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} common.APIResponse{data=[]domain.Exam}
// @Security BearerAuth
// @Router /exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	exams, meta, err := h.service.List(c.Query("class_id"), c.Query("term"), page, limit)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessWithMeta(c, exams, meta)
}

// Delete handles DELETE /api/v1/exams/:id
// @Summary Remove an exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /exams/{id} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}

// RecordResults handles POST /api/v1/exams/:id/results
// @Summary Record exam results
// @Description Upserts marks for students. Grades are computed from marks.
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param request body domain.RecordResultsRequest true "Result entries"
// @Success 201 {object} common.APIResponse{data=[]domain.ExamResult}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /exams/{id}/results [post]
func (h *ExamHandler) RecordResults(c *gin.Context) {
	var req domain.RecordResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	results, err := h.service.RecordResults(c.Param("id"), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, results)
}

// ResultsByExam handles GET /api/v1/exams/:id/results
// @Summary Results for an exam
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} common.APIResponse{data=[]domain.ExamResult}
// @Security BearerAuth
// @Router /exams/{id}/results [get]
func (h *ExamHandler) ResultsByExam(c *gin.Context) {
	results, err := h.service.ResultsByExam(c.Param("id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, results)
}

// ResultsByStudent handles GET /api/v1/exams/results/student/:student_id
// @Summary Result history for a student
// @Tags exams
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} common.APIResponse{data=[]domain.ExamResult}
// @Security BearerAuth
// @Router /exams/results/student/{student_id} [get]
func (h *ExamHandler) ResultsByStudent(c *gin.Context) {
	results, err := h.service.ResultsByStudent(c.Param("student_id"))
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, results)
}
