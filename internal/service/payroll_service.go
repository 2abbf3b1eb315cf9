package service

import (
	"time"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
)

// PayrollService manages monthly teacher payroll
type PayrollService interface {
	Create(req *domain.CreatePayrollRequest) (*domain.PayrollRecord, error)
	Get(id uint64) (*domain.PayrollRecord, error)
	ListByTeacher(teacherID string) ([]*domain.PayrollRecord, error)
	ListByMonth(month string) ([]*domain.PayrollRecord, error)
	MarkPaid(id uint64) (*domain.PayrollRecord, error)
}

type payrollService struct {
	repo        repository.PayrollRepository
	teacherRepo repository.TeacherRepository
}

// NewPayrollService creates a new PayrollService
func NewPayrollService(repo repository.PayrollRepository, teacherRepo repository.TeacherRepository) PayrollService {
	return &payrollService{repo: repo, teacherRepo: teacherRepo}
}

func (s *payrollService) Create(req *domain.CreatePayrollRequest) (*domain.PayrollRecord, error) {
	if _, err := s.teacherRepo.FindByID(req.TeacherID); err != nil {
		return nil, common.NewValidationError(map[string]string{
			"teacher_id": "teacher not found",
		})
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return nil, common.NewValidationError(map[string]string{
			"month": "month must be in YYYY-MM format",
		})
	}
	if existing, err := s.repo.FindByTeacherAndMonth(req.TeacherID, req.Month); err == nil && existing != nil {
		return nil, common.NewValidationError(map[string]string{
			"month": "payroll for this month already exists",
		})
	}

	record := &domain.PayrollRecord{
		TeacherID:  req.TeacherID,
		Month:      req.Month,
		Basic:      req.Basic,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
		Status:     domain.PayrollPending,
	}
	record.ComputeNet()
	if err := s.repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *payrollService) Get(id uint64) (*domain.PayrollRecord, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return record, nil
}

func (s *payrollService) ListByTeacher(teacherID string) ([]*domain.PayrollRecord, error) {
	return s.repo.ListByTeacher(teacherID)
}

func (s *payrollService) ListByMonth(month string) ([]*domain.PayrollRecord, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, common.NewValidationError(map[string]string{
			"month": "month must be in YYYY-MM format",
		})
	}
	return s.repo.ListByMonth(month)
}

func (s *payrollService) MarkPaid(id uint64) (*domain.PayrollRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if record.Status == domain.PayrollPaid {
		return nil, common.ErrInvalidTransition
	}
	now := time.Now()
	if err := s.repo.MarkPaid(id, now); err != nil {
		return nil, err
	}
	record.Status = domain.PayrollPaid
	record.PaidAt = &now
	return record, nil
}
