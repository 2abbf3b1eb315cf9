package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	"gorm.io/gorm"
)

// ExamService handles exam scheduling and result recording
type ExamService interface {
	Create(req *domain.CreateExamRequest) (*domain.Exam, error)
	Get(id string) (*domain.Exam, error)
	List(classID, term string, page, limit int) ([]*domain.Exam, *common.Meta, error)
	Delete(id string) error
	RecordResults(examID string, req *domain.RecordResultsRequest) ([]*domain.ExamResult, error)
	ResultsByExam(examID string) ([]*domain.ExamResult, error)
	ResultsByStudent(studentID string) ([]*domain.ExamResult, error)
}

type examService struct {
	repo      repository.ExamRepository
	classRepo repository.ClassRepository
}

// NewExamService creates a new ExamService
func NewExamService(repo repository.ExamRepository, classRepo repository.ClassRepository) ExamService {
	return &examService{repo: repo, classRepo: classRepo}
}

func (s *examService) Create(req *domain.CreateExamRequest) (*domain.Exam, error) {
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		return nil, common.NewValidationError(map[string]string{"class_id": "unknown class"})
	}
	exam := &domain.Exam{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Term:     req.Term,
		ClassID:  req.ClassID,
		Date:     req.Date,
		MaxMarks: req.MaxMarks,
	}
	if err := s.repo.CreateExam(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *examService) Get(id string) (*domain.Exam, error) {
	exam, err := s.repo.FindExamByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return exam, nil
}

func (s *examService) List(classID, term string, page, limit int) ([]*domain.Exam, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	exams, total, err := s.repo.ListExams(classID, term, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return exams, common.NewMeta(page, limit, total), nil
}

func (s *examService) Delete(id string) error {
	if err := s.repo.DeleteExam(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

// RecordResults stores one subject's marks for an exam. Marks above the
// exam's maximum are rejected; grades are derived from the percentage.
func (s *examService) RecordResults(examID string, req *domain.RecordResultsRequest) ([]*domain.ExamResult, error) {
	exam, err := s.Get(examID)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ExamResult, len(req.Results))
	for i, entry := range req.Results {
		if entry.Marks > float64(exam.MaxMarks) {
			return nil, common.NewValidationError(map[string]string{
				"marks": "marks exceed exam maximum for student " + entry.StudentID,
			})
		}
		results[i] = domain.ExamResult{
			ExamID:    examID,
			StudentID: entry.StudentID,
			Subject:   req.Subject,
			Marks:     entry.Marks,
			Grade:     domain.GradeFor(entry.Marks, exam.MaxMarks),
		}
	}
	if err := s.repo.UpsertResults(results); err != nil {
		return nil, err
	}

	out := make([]*domain.ExamResult, len(results))
	for i := range results {
		out[i] = &results[i]
	}
	return out, nil
}

func (s *examService) ResultsByExam(examID string) ([]*domain.ExamResult, error) {
	if _, err := s.Get(examID); err != nil {
		return nil, err
	}
	return s.repo.FindResultsByExam(examID)
}

func (s *examService) ResultsByStudent(studentID string) ([]*domain.ExamResult, error) {
	return s.repo.FindResultsByStudent(studentID)
}
