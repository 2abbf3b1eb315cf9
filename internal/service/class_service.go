package service

import (
	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
)

// ClassService manages class/section records
type ClassService interface {
	Create(req *domain.CreateClassRequest) (*domain.SchoolClass, error)
	Get(id string) (*domain.SchoolClass, error)
	List() ([]*domain.SchoolClass, error)
	Update(id string, req *domain.CreateClassRequest) (*domain.SchoolClass, error)
	Delete(id string) error
}

type classService struct {
	repo        repository.ClassRepository
	teacherRepo repository.TeacherRepository
}

// NewClassService creates a new ClassService
func NewClassService(repo repository.ClassRepository, teacherRepo repository.TeacherRepository) ClassService {
	return &classService{repo: repo, teacherRepo: teacherRepo}
}

func (s *classService) Create(req *domain.CreateClassRequest) (*domain.SchoolClass, error) {
	if err := s.checkTeacher(req.ClassTeacherID); err != nil {
		return nil, err
	}
	class := &domain.SchoolClass{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Grade:          req.Grade,
		Section:        req.Section,
		ClassTeacherID: req.ClassTeacherID,
	}
	if err := s.repo.Create(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *classService) Get(id string) (*domain.SchoolClass, error) {
	class, err := s.repo.FindByID(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return class, nil
}

func (s *classService) List() ([]*domain.SchoolClass, error) {
	return s.repo.List()
}

func (s *classService) Update(id string, req *domain.CreateClassRequest) (*domain.SchoolClass, error) {
	class, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkTeacher(req.ClassTeacherID); err != nil {
		return nil, err
	}
	class.Name = req.Name
	class.Grade = req.Grade
	class.Section = req.Section
	class.ClassTeacherID = req.ClassTeacherID
	if err := s.repo.Update(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *classService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return common.ErrNotFound
	}
	return nil
}

func (s *classService) checkTeacher(teacherID string) error {
	if teacherID == "" {
		return nil
	}
	if _, err := s.teacherRepo.FindByID(teacherID); err != nil {
		return common.NewValidationError(map[string]string{
			"class_teacher_id": "teacher not found",
		})
	}
	return nil
}
