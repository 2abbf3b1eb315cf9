package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// StudentRepository is the student data access layer
type StudentRepository interface {
	Create(student *domain.Student) error
	FindByID(id string) (*domain.Student, error)
	FindByAdmissionNo(no string) (*domain.Student, error)
	Update(student *domain.Student) error
	Delete(id string) error
	List(classID, search string, page, limit int) ([]*domain.Student, int64, error)
	CountAll() (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *domain.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id string) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.Where("id = ?", id).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByAdmissionNo(no string) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.Where("admission_no = ?", no).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) Update(student *domain.Student) error {
	return r.db.Save(student).Error
}

func (r *studentRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Student{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepository) List(classID, search string, page, limit int) ([]*domain.Student, int64, error) {
	query := r.db.Model(&domain.Student{})
	if classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR admission_no LIKE ?", like, like)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var students []*domain.Student
	offset := (page - 1) * limit
	if err := query.Order("admission_no ASC").Offset(offset).Limit(limit).Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Student{}).Count(&total).Error
	return total, err
}
