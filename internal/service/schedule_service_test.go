package service

import (
	"testing"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(entry *domain.ScheduleEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindByID(id uint64) (*domain.ScheduleEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) ClassSlotTaken(classID string, day, period int) (bool, error) {
	args := m.Called(classID, day, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockScheduleRepository) TeacherSlotTaken(teacherID string, day, period int) (bool, error) {
	args := m.Called(teacherID, day, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockScheduleRepository) ListByClass(classID string) ([]*domain.ScheduleEntry, error) {
	args := m.Called(classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) ListByTeacher(teacherID string) ([]*domain.ScheduleEntry, error) {
	args := m.Called(teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockClassRepository is a mock implementation of ClassRepository
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) Create(class *domain.SchoolClass) error {
	args := m.Called(class)
	return args.Error(0)
}

func (m *MockClassRepository) FindByID(id string) (*domain.SchoolClass, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchoolClass), args.Error(1)
}

func (m *MockClassRepository) List() ([]*domain.SchoolClass, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SchoolClass), args.Error(1)
}

func (m *MockClassRepository) Update(class *domain.SchoolClass) error {
	args := m.Called(class)
	return args.Error(0)
}

func (m *MockClassRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func slotRequest() *domain.CreateScheduleEntryRequest {
	return &domain.CreateScheduleEntryRequest{
		ClassID:   "c-1",
		DayOfWeek: 1,
		Period:    3,
		Subject:   "Mathematics",
		TeacherID: "T001",
		Room:      "201",
	}
}

func TestCreateEntry(t *testing.T) {
	repo := new(MockScheduleRepository)
	classRepo := new(MockClassRepository)
	svc := NewScheduleService(repo, classRepo, nil)

	classRepo.On("FindByID", "c-1").Return(&domain.SchoolClass{ID: "c-1"}, nil)
	repo.On("ClassSlotTaken", "c-1", 1, 3).Return(false, nil)
	repo.On("TeacherSlotTaken", "T001", 1, 3).Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*domain.ScheduleEntry")).Return(nil)

	entry, err := svc.CreateEntry(slotRequest())

	assert.NoError(t, err)
	assert.Equal(t, "Mathematics", entry.Subject)
	repo.AssertExpectations(t)
}

func TestCreateEntry_UnknownClass(t *testing.T) {
	repo := new(MockScheduleRepository)
	classRepo := new(MockClassRepository)
	svc := NewScheduleService(repo, classRepo, nil)

	classRepo.On("FindByID", "c-1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateEntry(slotRequest())

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateEntry_ClassSlotConflict(t *testing.T) {
	repo := new(MockScheduleRepository)
	classRepo := new(MockClassRepository)
	svc := NewScheduleService(repo, classRepo, nil)

	classRepo.On("FindByID", "c-1").Return(&domain.SchoolClass{ID: "c-1"}, nil)
	repo.On("ClassSlotTaken", "c-1", 1, 3).Return(true, nil)

	_, err := svc.CreateEntry(slotRequest())

	assert.ErrorIs(t, err, common.ErrScheduleConflict)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateEntry_TeacherSlotConflict(t *testing.T) {
	repo := new(MockScheduleRepository)
	classRepo := new(MockClassRepository)
	svc := NewScheduleService(repo, classRepo, nil)

	classRepo.On("FindByID", "c-1").Return(&domain.SchoolClass{ID: "c-1"}, nil)
	repo.On("ClassSlotTaken", "c-1", 1, 3).Return(false, nil)
	repo.On("TeacherSlotTaken", "T001", 1, 3).Return(true, nil)

	_, err := svc.CreateEntry(slotRequest())

	assert.ErrorIs(t, err, common.ErrScheduleConflict)
	repo.AssertNotCalled(t, "Create")
}

func TestDeleteEntry_UnknownID(t *testing.T) {
	repo := new(MockScheduleRepository)
	svc := NewScheduleService(repo, new(MockClassRepository), nil)

	repo.On("Delete", uint64(9)).Return(gorm.ErrRecordNotFound)

	err := svc.DeleteEntry(9)

	assert.ErrorIs(t, err, common.ErrNotFound)
}
