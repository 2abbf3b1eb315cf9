package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// TransportRepository is the transport route and assignment data access layer
type TransportRepository interface {
	CreateRoute(route *domain.TransportRoute) error
	FindRouteByID(id string) (*domain.TransportRoute, error)
	ListRoutes() ([]*domain.TransportRoute, error)
	DeleteRoute(id string) error
	CountAssignments(routeID string) (int64, error)
	CreateAssignment(a *domain.TransportAssignment) error
	FindAssignmentByStudent(studentID string) (*domain.TransportAssignment, error)
	ListAssignments(routeID string) ([]*domain.TransportAssignment, error)
	DeleteAssignment(id uint64) error
}

type transportRepository struct {
	db *gorm.DB
}

// NewTransportRepository creates a new TransportRepository
func NewTransportRepository(db *gorm.DB) TransportRepository {
	return &transportRepository{db: db}
}

func (r *transportRepository) CreateRoute(route *domain.TransportRoute) error {
	return r.db.Create(route).Error
}

func (r *transportRepository) FindRouteByID(id string) (*domain.TransportRoute, error) {
	var route domain.TransportRoute
	if err := r.db.Where("id = ?", id).First(&route).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *transportRepository) ListRoutes() ([]*domain.TransportRoute, error) {
	var routes []*domain.TransportRoute
	err := r.db.Order("name ASC").Find(&routes).Error
	return routes, err
}

func (r *transportRepository) DeleteRoute(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", id).Delete(&domain.TransportAssignment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.TransportRoute{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *transportRepository) CountAssignments(routeID string) (int64, error) {
	var total int64
	err := r.db.Model(&domain.TransportAssignment{}).
		Where("route_id = ?", routeID).Count(&total).Error
	return total, err
}

func (r *transportRepository) CreateAssignment(a *domain.TransportAssignment) error {
	return r.db.Create(a).Error
}

func (r *transportRepository) FindAssignmentByStudent(studentID string) (*domain.TransportAssignment, error) {
	var a domain.TransportAssignment
	if err := r.db.Where("student_id = ?", studentID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *transportRepository) ListAssignments(routeID string) ([]*domain.TransportAssignment, error) {
	var assignments []*domain.TransportAssignment
	err := r.db.Where("route_id = ?", routeID).Order("stop ASC").Find(&assignments).Error
	return assignments, err
}

func (r *transportRepository) DeleteAssignment(id uint64) error {
	res := r.db.Where("id = ?", id).Delete(&domain.TransportAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
