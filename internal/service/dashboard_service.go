package service

import (
	"context"
	"time"

	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	pkgcache "github.com/schoolhub/sims-backend/pkg/cache"
)

// DashboardSummary is the admin landing-page snapshot
type DashboardSummary struct {
	Students        int64           `json:"students"`
	Teachers        int64           `json:"teachers"`
	PendingInvoices int64           `json:"pending_invoices"`
	Attendance      AttendanceToday `json:"attendance_today"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// AttendanceToday breaks down today's attendance marks
type AttendanceToday struct {
	Present int64   `json:"present"`
	Absent  int64   `json:"absent"`
	Late    int64   `json:"late"`
	Excused int64   `json:"excused"`
	Rate    float64 `json:"rate"`
}

// DashboardService aggregates headline counts. The summary is cached in
// Redis so a busy landing page does not hammer the database.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	studentRepo    repository.StudentRepository
	teacherRepo    repository.TeacherRepository
	feeRepo        repository.FeeRepository
	attendanceRepo repository.AttendanceRepository
	cache          pkgcache.Service
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	feeRepo repository.FeeRepository,
	attendanceRepo repository.AttendanceRepository,
	cache pkgcache.Service,
) DashboardService {
	return &dashboardService{
		studentRepo:    studentRepo,
		teacherRepo:    teacherRepo,
		feeRepo:        feeRepo,
		attendanceRepo: attendanceRepo,
		cache:          cache,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	key := pkgcache.PrefixDashboard + "summary"
	if s.cache != nil {
		var cached DashboardSummary
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	students, err := s.studentRepo.CountAll()
	if err != nil {
		return nil, err
	}
	teachers, err := s.teacherRepo.CountAll()
	if err != nil {
		return nil, err
	}
	pending, err := s.feeRepo.CountByStatus(domain.FeePending)
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	byStatus, err := s.attendanceRepo.CountByStatusOnDate(today)
	if err != nil {
		return nil, err
	}
	att := AttendanceToday{
		Present: byStatus[domain.AttendancePresent],
		Absent:  byStatus[domain.AttendanceAbsent],
		Late:    byStatus[domain.AttendanceLate],
		Excused: byStatus[domain.AttendanceExcused],
	}
	marked := att.Present + att.Absent + att.Late + att.Excused
	if marked > 0 {
		att.Rate = float64(att.Present+att.Late) / float64(marked)
	}

	summary := &DashboardSummary{
		Students:        students,
		Teachers:        teachers,
		PendingInvoices: pending,
		Attendance:      att,
		GeneratedAt:     time.Now(),
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, summary, pkgcache.TTLDashboard)
	}
	return summary, nil
}
