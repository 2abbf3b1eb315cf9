package repository

import (
	"time"

	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// PayrollRepository is the payroll data access layer
type PayrollRepository interface {
	Create(record *domain.PayrollRecord) error
	FindByID(id uint64) (*domain.PayrollRecord, error)
	FindByTeacherAndMonth(teacherID, month string) (*domain.PayrollRecord, error)
	ListByTeacher(teacherID string) ([]*domain.PayrollRecord, error)
	ListByMonth(month string) ([]*domain.PayrollRecord, error)
	MarkPaid(id uint64, paidAt time.Time) error
}

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new PayrollRepository
func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(record *domain.PayrollRecord) error {
	return r.db.Create(record).Error
}

func (r *payrollRepository) FindByID(id uint64) (*domain.PayrollRecord, error) {
	var record domain.PayrollRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *payrollRepository) FindByTeacherAndMonth(teacherID, month string) (*domain.PayrollRecord, error) {
	var record domain.PayrollRecord
	if err := r.db.Where("teacher_id = ? AND month = ?", teacherID, month).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *payrollRepository) ListByTeacher(teacherID string) ([]*domain.PayrollRecord, error) {
	var records []*domain.PayrollRecord
	err := r.db.Where("teacher_id = ?", teacherID).Order("month DESC").Find(&records).Error
	return records, err
}

func (r *payrollRepository) ListByMonth(month string) ([]*domain.PayrollRecord, error) {
	var records []*domain.PayrollRecord
	err := r.db.Where("month = ?", month).Order("teacher_id ASC").Find(&records).Error
	return records, err
}

func (r *payrollRepository) MarkPaid(id uint64, paidAt time.Time) error {
	res := r.db.Model(&domain.PayrollRecord{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": domain.PayrollPaid, "paid_at": paidAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
