package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// TeacherRepository is the teacher data access layer
type TeacherRepository interface {
	Create(teacher *domain.Teacher) error
	FindByID(id string) (*domain.Teacher, error)
	Update(teacher *domain.Teacher) error
	Delete(id string) error
	List(search string, page, limit int) ([]*domain.Teacher, int64, error)
	CountAll() (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(teacher *domain.Teacher) error {
	return r.db.Create(teacher).Error
}

func (r *teacherRepository) FindByID(id string) (*domain.Teacher, error) {
	var teacher domain.Teacher
	if err := r.db.Where("id = ?", id).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) Update(teacher *domain.Teacher) error {
	return r.db.Save(teacher).Error
}

func (r *teacherRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Teacher{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *teacherRepository) List(search string, page, limit int) ([]*domain.Teacher, int64, error) {
	query := r.db.Model(&domain.Teacher{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR employee_no LIKE ? OR subjects LIKE ?", like, like, like)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var teachers []*domain.Teacher
	offset := (page - 1) * limit
	if err := query.Order("employee_no ASC").Offset(offset).Limit(limit).Find(&teachers).Error; err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

func (r *teacherRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Teacher{}).Count(&total).Error
	return total, err
}
