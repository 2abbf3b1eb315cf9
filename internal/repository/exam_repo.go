package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExamRepository is the exam and result data access layer
type ExamRepository interface {
	CreateExam(exam *domain.Exam) error
	FindExamByID(id string) (*domain.Exam, error)
	ListExams(classID, term string, page, limit int) ([]*domain.Exam, int64, error)
	DeleteExam(id string) error
	UpsertResults(results []domain.ExamResult) error
	FindResultsByExam(examID string) ([]*domain.ExamResult, error)
	FindResultsByStudent(studentID string) ([]*domain.ExamResult, error)
}

type examRepository struct {
	db *gorm.DB
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) CreateExam(exam *domain.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindExamByID(id string) (*domain.Exam, error) {
	var exam domain.Exam
	if err := r.db.Where("id = ?", id).First(&exam).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) ListExams(classID, term string, page, limit int) ([]*domain.Exam, int64, error) {
	query := r.db.Model(&domain.Exam{})
	if classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if term != "" {
		query = query.Where("term = ?", term)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var exams []*domain.Exam
	offset := (page - 1) * limit
	if err := query.Order("date DESC").Offset(offset).Limit(limit).Find(&exams).Error; err != nil {
		return nil, 0, err
	}
	return exams, total, nil
}

func (r *examRepository) DeleteExam(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&domain.ExamResult{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Exam{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// UpsertResults records marks, overwriting an existing row for the same
// (exam, student, subject).
func (r *examRepository) UpsertResults(results []domain.ExamResult) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exam_id"}, {Name: "student_id"}, {Name: "subject"}},
		DoUpdates: clause.AssignmentColumns([]string{"marks", "grade", "updated_at"}),
	}).Create(&results).Error
}

func (r *examRepository) FindResultsByExam(examID string) ([]*domain.ExamResult, error) {
	var results []*domain.ExamResult
	err := r.db.Where("exam_id = ?", examID).
		Order("student_id ASC, subject ASC").Find(&results).Error
	return results, err
}

func (r *examRepository) FindResultsByStudent(studentID string) ([]*domain.ExamResult, error) {
	var results []*domain.ExamResult
	err := r.db.Where("student_id = ?", studentID).
		Order("exam_id ASC, subject ASC").Find(&results).Error
	return results, err
}
