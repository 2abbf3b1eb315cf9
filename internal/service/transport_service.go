package service

import (
	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
)

// TransportService manages bus routes and student assignments. A route
// never takes more students than its capacity, and a student rides at
// most one route.
type TransportService interface {
	CreateRoute(req *domain.CreateRouteRequest) (*domain.TransportRoute, error)
	GetRoute(id string) (*domain.TransportRoute, error)
	ListRoutes() ([]*domain.TransportRoute, error)
	DeleteRoute(id string) error
	AssignStudent(routeID string, req *domain.AssignStudentRequest) (*domain.TransportAssignment, error)
	ListAssignments(routeID string) ([]*domain.TransportAssignment, error)
	RemoveAssignment(id uint64) error
}

type transportService struct {
	repo        repository.TransportRepository
	studentRepo repository.StudentRepository
}

// NewTransportService creates a new TransportService
func NewTransportService(repo repository.TransportRepository, studentRepo repository.StudentRepository) TransportService {
	return &transportService{repo: repo, studentRepo: studentRepo}
}

func (s *transportService) CreateRoute(req *domain.CreateRouteRequest) (*domain.TransportRoute, error) {
	route := &domain.TransportRoute{
		ID:         uuid.New().String(),
		Name:       req.Name,
		VehicleNo:  req.VehicleNo,
		DriverName: req.DriverName,
		Capacity:   req.Capacity,
	}
	if err := s.repo.CreateRoute(route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *transportService) GetRoute(id string) (*domain.TransportRoute, error) {
	route, err := s.repo.FindRouteByID(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return route, nil
}

func (s *transportService) ListRoutes() ([]*domain.TransportRoute, error) {
	return s.repo.ListRoutes()
}

func (s *transportService) DeleteRoute(id string) error {
	if err := s.repo.DeleteRoute(id); err != nil {
		return common.ErrNotFound
	}
	return nil
}

func (s *transportService) AssignStudent(routeID string, req *domain.AssignStudentRequest) (*domain.TransportAssignment, error) {
	route, err := s.GetRoute(routeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		return nil, common.NewValidationError(map[string]string{
			"student_id": "student not found",
		})
	}
	if existing, err := s.repo.FindAssignmentByStudent(req.StudentID); err == nil && existing != nil {
		return nil, common.NewValidationError(map[string]string{
			"student_id": "student is already assigned to a route",
		})
	}

	count, err := s.repo.CountAssignments(routeID)
	if err != nil {
		return nil, err
	}
	if count >= int64(route.Capacity) {
		return nil, common.ErrRouteFull
	}

	a := &domain.TransportAssignment{
		RouteID:   routeID,
		StudentID: req.StudentID,
		Stop:      req.Stop,
	}
	if err := s.repo.CreateAssignment(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *transportService) ListAssignments(routeID string) ([]*domain.TransportAssignment, error) {
	if _, err := s.GetRoute(routeID); err != nil {
		return nil, err
	}
	return s.repo.ListAssignments(routeID)
}

func (s *transportService) RemoveAssignment(id uint64) error {
	if err := s.repo.DeleteAssignment(id); err != nil {
		return common.ErrNotFound
	}
	return nil
}
