package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// ScheduleRepository is the timetable data access layer
type ScheduleRepository interface {
	Create(entry *domain.ScheduleEntry) error
	FindByID(id uint64) (*domain.ScheduleEntry, error)
	ClassSlotTaken(classID string, day, period int) (bool, error)
	TeacherSlotTaken(teacherID string, day, period int) (bool, error)
	ListByClass(classID string) ([]*domain.ScheduleEntry, error)
	ListByTeacher(teacherID string) ([]*domain.ScheduleEntry, error)
	Delete(id uint64) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(entry *domain.ScheduleEntry) error {
	return r.db.Create(entry).Error
}

func (r *scheduleRepository) FindByID(id uint64) (*domain.ScheduleEntry, error) {
	var entry domain.ScheduleEntry
	if err := r.db.Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepository) ClassSlotTaken(classID string, day, period int) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ScheduleEntry{}).
		Where("class_id = ? AND day_of_week = ? AND period = ?", classID, day, period).
		Count(&count).Error
	return count > 0, err
}

func (r *scheduleRepository) TeacherSlotTaken(teacherID string, day, period int) (bool, error) {
	var count int64
	err := r.db.Model(&domain.ScheduleEntry{}).
		Where("teacher_id = ? AND day_of_week = ? AND period = ?", teacherID, day, period).
		Count(&count).Error
	return count > 0, err
}

func (r *scheduleRepository) ListByClass(classID string) ([]*domain.ScheduleEntry, error) {
	var entries []*domain.ScheduleEntry
	err := r.db.Where("class_id = ?", classID).
		Order("day_of_week ASC, period ASC").Find(&entries).Error
	return entries, err
}

func (r *scheduleRepository) ListByTeacher(teacherID string) ([]*domain.ScheduleEntry, error) {
	var entries []*domain.ScheduleEntry
	err := r.db.Where("teacher_id = ?", teacherID).
		Order("day_of_week ASC, period ASC").Find(&entries).Error
	return entries, err
}

func (r *scheduleRepository) Delete(id uint64) error {
	res := r.db.Where("id = ?", id).Delete(&domain.ScheduleEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
