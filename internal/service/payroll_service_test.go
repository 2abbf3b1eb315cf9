package service

import (
	"testing"
	"time"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockPayrollRepository is a mock implementation of PayrollRepository
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) Create(record *domain.PayrollRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockPayrollRepository) FindByID(id uint64) (*domain.PayrollRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) FindByTeacherAndMonth(teacherID, month string) (*domain.PayrollRecord, error) {
	args := m.Called(teacherID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) ListByTeacher(teacherID string) ([]*domain.PayrollRecord, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) ListByMonth(month string) ([]*domain.PayrollRecord, error) {
	args := m.Called(month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PayrollRecord), args.Error(1)
}

func (m *MockPayrollRepository) MarkPaid(id uint64, paidAt time.Time) error {
	args := m.Called(id, paidAt)
	return args.Error(0)
}

// MockTeacherRepository is a mock implementation of TeacherRepository
type MockTeacherRepository struct {
	mock.Mock
}

func (m *MockTeacherRepository) Create(teacher *domain.Teacher) error {
	args := m.Called(teacher)
	return args.Error(0)
}

func (m *MockTeacherRepository) FindByID(id string) (*domain.Teacher, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Teacher), args.Error(1)
}

func (m *MockTeacherRepository) Update(teacher *domain.Teacher) error {
	args := m.Called(teacher)
	return args.Error(0)
}

func (m *MockTeacherRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTeacherRepository) List(search string, page, limit int) ([]*domain.Teacher, int64, error) {
	args := m.Called(search, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Teacher), args.Get(1).(int64), args.Error(2)
}

func (m *MockTeacherRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func payrollRequest() *domain.CreatePayrollRequest {
	return &domain.CreatePayrollRequest{
		TeacherID:  "T001",
		Month:      "2026-08",
		Basic:      50000,
		Allowances: 8000,
		Deductions: 3500,
	}
}

func TestCreatePayroll(t *testing.T) {
	repo := new(MockPayrollRepository)
	teacherRepo := new(MockTeacherRepository)
	svc := NewPayrollService(repo, teacherRepo)

	teacherRepo.On("FindByID", "T001").Return(&domain.Teacher{ID: "T001"}, nil)
	repo.On("FindByTeacherAndMonth", "T001", "2026-08").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*domain.PayrollRecord")).Return(nil)

	record, err := svc.Create(payrollRequest())

	assert.NoError(t, err)
	assert.Equal(t, domain.PayrollPending, record.Status)
	assert.Equal(t, 54500.0, record.Net)
	repo.AssertExpectations(t)
}

func TestCreatePayroll_DuplicateMonth(t *testing.T) {
	repo := new(MockPayrollRepository)
	teacherRepo := new(MockTeacherRepository)
	svc := NewPayrollService(repo, teacherRepo)

	teacherRepo.On("FindByID", "T001").Return(&domain.Teacher{ID: "T001"}, nil)
	repo.On("FindByTeacherAndMonth", "T001", "2026-08").
		Return(&domain.PayrollRecord{ID: 1, TeacherID: "T001", Month: "2026-08"}, nil)

	_, err := svc.Create(payrollRequest())

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestCreatePayroll_BadMonthFormat(t *testing.T) {
	repo := new(MockPayrollRepository)
	teacherRepo := new(MockTeacherRepository)
	svc := NewPayrollService(repo, teacherRepo)

	teacherRepo.On("FindByID", "T001").Return(&domain.Teacher{ID: "T001"}, nil)

	req := payrollRequest()
	req.Month = "August 2026"
	_, err := svc.Create(req)

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCreatePayroll_UnknownTeacher(t *testing.T) {
	repo := new(MockPayrollRepository)
	teacherRepo := new(MockTeacherRepository)
	svc := NewPayrollService(repo, teacherRepo)

	teacherRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	req := payrollRequest()
	req.TeacherID = "ghost"
	_, err := svc.Create(req)

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestMarkPaid(t *testing.T) {
	repo := new(MockPayrollRepository)
	svc := NewPayrollService(repo, new(MockTeacherRepository))

	record := &domain.PayrollRecord{ID: 1, TeacherID: "T001", Month: "2026-08", Status: domain.PayrollPending}
	repo.On("FindByID", uint64(1)).Return(record, nil)
	repo.On("MarkPaid", uint64(1), mock.AnythingOfType("time.Time")).Return(nil)

	updated, err := svc.MarkPaid(1)

	assert.NoError(t, err)
	assert.Equal(t, domain.PayrollPaid, updated.Status)
	assert.NotNil(t, updated.PaidAt)
}

func TestMarkPaid_AlreadyPaid(t *testing.T) {
	repo := new(MockPayrollRepository)
	svc := NewPayrollService(repo, new(MockTeacherRepository))

	record := &domain.PayrollRecord{ID: 1, Status: domain.PayrollPaid}
	repo.On("FindByID", uint64(1)).Return(record, nil)

	_, err := svc.MarkPaid(1)

	assert.ErrorIs(t, err, common.ErrInvalidTransition)
	repo.AssertNotCalled(t, "MarkPaid")
}

func TestListByMonth_BadFormat(t *testing.T) {
	repo := new(MockPayrollRepository)
	svc := NewPayrollService(repo, new(MockTeacherRepository))

	_, err := svc.ListByMonth("2026/08")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "ListByMonth")
}
