package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/middleware"
	"github.com/schoolhub/sims-backend/internal/service"
)

// AttendanceHandler handles attendance HTTP requests
type AttendanceHandler struct {
	service service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(service service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// Mark handles POST /api/v1/attendance
// @Summary Mark attendance for a class
// @Description Records attendance for multiple students on one date. Re-marking upserts.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body domain.MarkAttendanceRequest true "Attendance entries"
// @Success 201 {object} common.APIResponse{data=[]domain.Attendance}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req domain.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	records, err := h.service.Mark(middleware.GetUserID(c), &req)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.CreatedResponse(c, records)
}

// ByClass handles GET /api/v1/attendance/class/:class_id
// @Summary Attendance for a class on a date
// @Tags attendance
// @Produce json
// @Param class_id path string true "Class ID"
// @Param date query string false "Date (YYYY-MM-DD, default today)"
// @Success 200 {object} common.APIResponse{data=[]domain.Attendance}
// @Security BearerAuth
// @Router /attendance/class/{class_id} [get]
func (h *AttendanceHandler) ByClass(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid date", err)
			return
		}
		date = parsed
	}
	records, err := h.service.ByClassAndDate(c.Param("class_id"), date)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, records)
}

// ByStudent handles GET /api/v1/attendance/student/:student_id
// @Summary Attendance history for a student
// @Tags attendance
// @Produce json
// @Param student_id path string true "Student ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} common.APIResponse{data=[]domain.Attendance}
// @Security BearerAuth
// @Router /attendance/student/{student_id} [get]
func (h *AttendanceHandler) ByStudent(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, -1, 0)
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid from date", err)
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid to date", err)
			return
		}
		to = parsed
	}
	records, err := h.service.ByStudent(c.Param("student_id"), from, to)
	if err != nil {
		common.ServiceError(c, err)
		return
	}
	common.SuccessResponse(c, records)
}
