package repository

import (
	"time"

	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository is the attendance data access layer
type AttendanceRepository interface {
	Upsert(entries []domain.Attendance) error
	FindByClassAndDate(classID string, date time.Time) ([]*domain.Attendance, error)
	FindByStudent(studentID string, from, to time.Time) ([]*domain.Attendance, error)
	CountByStatusOnDate(date time.Time) (map[domain.AttendanceStatus]int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert writes attendance rows, overwriting any existing mark for the
// same (student, date).
func (r *attendanceRepository) Upsert(entries []domain.Attendance) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "remark", "marked_by", "updated_at"}),
	}).Create(&entries).Error
}

func (r *attendanceRepository) FindByClassAndDate(classID string, date time.Time) ([]*domain.Attendance, error) {
	var entries []*domain.Attendance
	err := r.db.Where("class_id = ? AND date = ?", classID, date.Format("2006-01-02")).
		Order("student_id ASC").Find(&entries).Error
	return entries, err
}

func (r *attendanceRepository) FindByStudent(studentID string, from, to time.Time) ([]*domain.Attendance, error) {
	var entries []*domain.Attendance
	query := r.db.Where("student_id = ?", studentID)
	if !from.IsZero() {
		query = query.Where("date >= ?", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		query = query.Where("date <= ?", to.Format("2006-01-02"))
	}
	err := query.Order("date DESC").Find(&entries).Error
	return entries, err
}

// CountByStatusOnDate aggregates one day's attendance for the dashboard
func (r *attendanceRepository) CountByStatusOnDate(date time.Time) (map[domain.AttendanceStatus]int64, error) {
	type row struct {
		Status domain.AttendanceStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&domain.Attendance{}).
		Select("status, COUNT(*) as count").
		Where("date = ?", date.Format("2006-01-02")).
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.AttendanceStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
