package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/handler"
	"github.com/schoolhub/sims-backend/internal/middleware"
	"github.com/schoolhub/sims-backend/pkg/jwt"
)

// SetupAuth configures authentication routes
func SetupAuth(router *gin.Engine, h *handler.AuthHandler, jwtManager *jwt.Manager) {
	authGroup := router.Group("/api/v1/auth")
	authGroup.POST("/login", h.Login)
	authGroup.POST("/refresh", h.Refresh)
	authGroup.POST("/register", middleware.JWTAuth(jwtManager), middleware.RequireAdmin(), h.Register)
	authGroup.GET("/me", middleware.JWTAuth(jwtManager), h.Me)
}

// SetupMessages configures the message lifecycle routes
func SetupMessages(router *gin.Engine, h *handler.MessageHandler, jwtManager *jwt.Manager) {
	messages := router.Group("/api/v1/messages", middleware.JWTAuth(jwtManager))
	messages.GET("", h.List)
	messages.POST("", h.Compose)
	messages.GET("/:id", h.Get)
	messages.PUT("/:id", h.UpdateDraft)
	messages.PATCH("/:id/send", h.SendDraft)
	messages.PATCH("/:id/delete", h.MoveToTrash)
	messages.PATCH("/:id/undo", h.Restore)
	messages.DELETE("/:id", h.PermanentlyDelete)
	messages.PUT("/:id/read", h.MarkRead)
	messages.PATCH("/:id/star", h.ToggleStar)
}

// SetupStudents configures student routes. Writes are admin only.
func SetupStudents(router *gin.Engine, h *handler.StudentHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	students := router.Group("/api/v1/students", auth)
	students.GET("", h.List)
	students.GET("/:id", h.Get)
	students.POST("", admin, h.Create)
	students.PUT("/:id", admin, h.Update)
	students.DELETE("/:id", admin, h.Delete)
}

// SetupTeachers configures teacher routes. Writes are admin only.
func SetupTeachers(router *gin.Engine, h *handler.TeacherHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	teachers := router.Group("/api/v1/teachers", auth)
	teachers.GET("", h.List)
	teachers.GET("/:id", h.Get)
	teachers.POST("", admin, h.Create)
	teachers.PUT("/:id", admin, h.Update)
	teachers.DELETE("/:id", admin, h.Delete)
}

// SetupClasses configures class routes. Writes are admin only.
func SetupClasses(router *gin.Engine, h *handler.ClassHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	classes := router.Group("/api/v1/classes", auth)
	classes.GET("", h.List)
	classes.GET("/:id", h.Get)
	classes.POST("", admin, h.Create)
	classes.PUT("/:id", admin, h.Update)
	classes.DELETE("/:id", admin, h.Delete)
}

// SetupAttendance configures attendance routes. Teachers mark attendance.
func SetupAttendance(router *gin.Engine, h *handler.AttendanceHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)

	attendance := router.Group("/api/v1/attendance", auth)
	attendance.POST("", middleware.RequireRole(domain.RoleTeacher), h.Mark)
	attendance.GET("/class/:class_id", h.ByClass)
	attendance.GET("/student/:student_id", h.ByStudent)
}

// SetupExams configures exam routes. Teachers manage exams and results.
func SetupExams(router *gin.Engine, h *handler.ExamHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	teacher := middleware.RequireRole(domain.RoleTeacher)

	exams := router.Group("/api/v1/exams", auth)
	exams.GET("", h.List)
	exams.GET("/:id", h.Get)
	exams.POST("", teacher, h.Create)
	exams.DELETE("/:id", teacher, h.Delete)
	exams.POST("/:id/results", teacher, h.RecordResults)
	exams.GET("/:id/results", h.ResultsByExam)
	exams.GET("/results/student/:student_id", h.ResultsByStudent)
}

// SetupFees configures fee routes. Accountants manage invoices and payments.
func SetupFees(router *gin.Engine, h *handler.FeeHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	accountant := middleware.RequireRole(domain.RoleAccountant)

	fees := router.Group("/api/v1/fees", auth)
	fees.GET("", h.ListInvoices)
	fees.GET("/:id", h.GetInvoice)
	fees.POST("", accountant, h.CreateInvoice)
	fees.POST("/:id/payments", accountant, h.RecordPayment)
	fees.GET("/:id/payments", h.ListPayments)
}

// SetupAnnouncements configures announcement routes. Staff publish.
func SetupAnnouncements(router *gin.Engine, h *handler.AnnouncementHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	staff := middleware.RequireRole(domain.RoleTeacher, domain.RoleAccountant)

	announcements := router.Group("/api/v1/announcements", auth)
	announcements.GET("", h.List)
	announcements.GET("/:id", h.Get)
	announcements.POST("", staff, h.Create)
	announcements.PUT("/:id", staff, h.Update)
	announcements.DELETE("/:id", staff, h.Delete)
}

// SetupSchedule configures timetable routes. Writes are admin only.
func SetupSchedule(router *gin.Engine, h *handler.ScheduleHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	schedule := router.Group("/api/v1/schedule", auth)
	schedule.POST("", admin, h.Create)
	schedule.GET("/class/:class_id", h.ByClass)
	schedule.GET("/teacher/:teacher_id", h.ByTeacher)
	schedule.DELETE("/:id", admin, h.Delete)
}

// SetupTransport configures transport routes. Writes are admin only.
func SetupTransport(router *gin.Engine, h *handler.TransportHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	transport := router.Group("/api/v1/transport", auth)
	transport.GET("/routes", h.ListRoutes)
	transport.GET("/routes/:id", h.GetRoute)
	transport.POST("/routes", admin, h.CreateRoute)
	transport.DELETE("/routes/:id", admin, h.DeleteRoute)
	transport.GET("/routes/:id/assignments", h.ListAssignments)
	transport.POST("/routes/:id/assignments", admin, h.AssignStudent)
	transport.DELETE("/assignments/:id", admin, h.RemoveAssignment)
}

// SetupPayroll configures payroll routes. Accountants only.
func SetupPayroll(router *gin.Engine, h *handler.PayrollHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)
	accountant := middleware.RequireRole(domain.RoleAccountant)

	payroll := router.Group("/api/v1/payroll", auth, accountant)
	payroll.GET("", h.List)
	payroll.GET("/:id", h.Get)
	payroll.POST("", h.Create)
	payroll.PATCH("/:id/pay", h.MarkPaid)
}

// SetupDashboard configures the dashboard route
func SetupDashboard(router *gin.Engine, h *handler.DashboardHandler, jwtManager *jwt.Manager) {
	router.GET("/api/v1/dashboard", middleware.JWTAuth(jwtManager), h.Summary)
}

// SetupUpload configures the file upload route
func SetupUpload(router *gin.Engine, h *handler.UploadHandler, jwtManager *jwt.Manager) {
	router.POST("/api/v1/upload", middleware.JWTAuth(jwtManager), h.Upload)
}

// SetupWS configures the WebSocket event stream route
func SetupWS(router *gin.Engine, h *handler.WSHandler, jwtManager *jwt.Manager) {
	router.GET("/ws/events", middleware.JWTAuth(jwtManager), h.Connect)
}
