package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// ClassRepository is the class/section data access layer
type ClassRepository interface {
	Create(class *domain.SchoolClass) error
	FindByID(id string) (*domain.SchoolClass, error)
	List() ([]*domain.SchoolClass, error)
	Update(class *domain.SchoolClass) error
	Delete(id string) error
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(class *domain.SchoolClass) error {
	return r.db.Create(class).Error
}

func (r *classRepository) FindByID(id string) (*domain.SchoolClass, error) {
	var class domain.SchoolClass
	if err := r.db.Where("id = ?", id).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List() ([]*domain.SchoolClass, error) {
	var classes []*domain.SchoolClass
	err := r.db.Order("grade ASC, section ASC").Find(&classes).Error
	return classes, err
}

func (r *classRepository) Update(class *domain.SchoolClass) error {
	return r.db.Save(class).Error
}

func (r *classRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.SchoolClass{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
