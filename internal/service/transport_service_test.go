package service

import (
	"testing"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockTransportRepository is a mock implementation of TransportRepository
type MockTransportRepository struct {
	mock.Mock
}

func (m *MockTransportRepository) CreateRoute(route *domain.TransportRoute) error {
	args := m.Called(route)
	return args.Error(0)
}

func (m *MockTransportRepository) FindRouteByID(id string) (*domain.TransportRoute, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransportRoute), args.Error(1)
}

func (m *MockTransportRepository) ListRoutes() ([]*domain.TransportRoute, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TransportRoute), args.Error(1)
}

func (m *MockTransportRepository) DeleteRoute(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTransportRepository) CountAssignments(routeID string) (int64, error) {
	args := m.Called(routeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransportRepository) CreateAssignment(a *domain.TransportAssignment) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockTransportRepository) FindAssignmentByStudent(studentID string) (*domain.TransportAssignment, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransportAssignment), args.Error(1)
}

func (m *MockTransportRepository) ListAssignments(routeID string) ([]*domain.TransportAssignment, error) {
	args := m.Called(routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TransportAssignment), args.Error(1)
}

func (m *MockTransportRepository) DeleteAssignment(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockStudentRepository is a mock implementation of StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(student *domain.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockStudentRepository) FindByID(id string) (*domain.Student, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByAdmissionNo(no string) (*domain.Student, error) {
	args := m.Called(no)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(student *domain.Student) error {
	args := m.Called(student)
	return args.Error(0)
}

func (m *MockStudentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStudentRepository) List(classID, search string, page, limit int) ([]*domain.Student, int64, error) {
	args := m.Called(classID, search, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Student), args.Get(1).(int64), args.Error(2)
}

func (m *MockStudentRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func testRoute(capacity int) *domain.TransportRoute {
	return &domain.TransportRoute{
		ID:        "r-1",
		Name:      "North Loop",
		VehicleNo: "KA-01-1234",
		Capacity:  capacity,
	}
}

func TestAssignStudent(t *testing.T) {
	repo := new(MockTransportRepository)
	studentRepo := new(MockStudentRepository)
	svc := NewTransportService(repo, studentRepo)

	repo.On("FindRouteByID", "r-1").Return(testRoute(40), nil)
	studentRepo.On("FindByID", "s-1").Return(&domain.Student{ID: "s-1"}, nil)
	repo.On("FindAssignmentByStudent", "s-1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CountAssignments", "r-1").Return(int64(12), nil)
	repo.On("CreateAssignment", mock.AnythingOfType("*domain.TransportAssignment")).Return(nil)

	a, err := svc.AssignStudent("r-1", &domain.AssignStudentRequest{StudentID: "s-1", Stop: "Main Gate"})

	assert.NoError(t, err)
	assert.Equal(t, "r-1", a.RouteID)
	assert.Equal(t, "Main Gate", a.Stop)
	repo.AssertExpectations(t)
}

func TestAssignStudent_RouteFull(t *testing.T) {
	repo := new(MockTransportRepository)
	studentRepo := new(MockStudentRepository)
	svc := NewTransportService(repo, studentRepo)

	repo.On("FindRouteByID", "r-1").Return(testRoute(20), nil)
	studentRepo.On("FindByID", "s-1").Return(&domain.Student{ID: "s-1"}, nil)
	repo.On("FindAssignmentByStudent", "s-1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CountAssignments", "r-1").Return(int64(20), nil)

	_, err := svc.AssignStudent("r-1", &domain.AssignStudentRequest{StudentID: "s-1", Stop: "Main Gate"})

	assert.ErrorIs(t, err, common.ErrRouteFull)
	repo.AssertNotCalled(t, "CreateAssignment")
}

func TestAssignStudent_AlreadyAssigned(t *testing.T) {
	repo := new(MockTransportRepository)
	studentRepo := new(MockStudentRepository)
	svc := NewTransportService(repo, studentRepo)

	repo.On("FindRouteByID", "r-1").Return(testRoute(40), nil)
	studentRepo.On("FindByID", "s-1").Return(&domain.Student{ID: "s-1"}, nil)
	repo.On("FindAssignmentByStudent", "s-1").
		Return(&domain.TransportAssignment{ID: 1, RouteID: "r-2", StudentID: "s-1"}, nil)

	_, err := svc.AssignStudent("r-1", &domain.AssignStudentRequest{StudentID: "s-1", Stop: "Main Gate"})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateAssignment")
}

func TestAssignStudent_UnknownStudent(t *testing.T) {
	repo := new(MockTransportRepository)
	studentRepo := new(MockStudentRepository)
	svc := NewTransportService(repo, studentRepo)

	repo.On("FindRouteByID", "r-1").Return(testRoute(40), nil)
	studentRepo.On("FindByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AssignStudent("r-1", &domain.AssignStudentRequest{StudentID: "ghost", Stop: "Main Gate"})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestAssignStudent_UnknownRoute(t *testing.T) {
	repo := new(MockTransportRepository)
	svc := NewTransportService(repo, new(MockStudentRepository))

	repo.On("FindRouteByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AssignStudent("missing", &domain.AssignStudentRequest{StudentID: "s-1", Stop: "Main Gate"})

	assert.ErrorIs(t, err, common.ErrNotFound)
}
