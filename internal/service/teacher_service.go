package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	"gorm.io/gorm"
)

// TeacherService handles teacher records
type TeacherService interface {
	Create(req *domain.CreateTeacherRequest) (*domain.Teacher, error)
	Get(id string) (*domain.Teacher, error)
	Update(id string, req *domain.UpdateTeacherRequest) (*domain.Teacher, error)
	Delete(id string) error
	List(search string, page, limit int) ([]*domain.Teacher, *common.Meta, error)
}

type teacherService struct {
	repo repository.TeacherRepository
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(repo repository.TeacherRepository) TeacherService {
	return &teacherService{repo: repo}
}

func (s *teacherService) Create(req *domain.CreateTeacherRequest) (*domain.Teacher, error) {
	joined := time.Now()
	if req.JoinedAt != nil {
		joined = *req.JoinedAt
	}
	teacher := &domain.Teacher{
		ID:         uuid.New().String(),
		EmployeeNo: req.EmployeeNo,
		Name:       req.Name,
		Subjects:   req.Subjects,
		Phone:      req.Phone,
		Email:      req.Email,
		PhotoURL:   req.PhotoURL,
		JoinedAt:   joined,
	}
	if err := s.repo.Create(teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) Get(id string) (*domain.Teacher, error) {
	teacher, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) Update(id string, req *domain.UpdateTeacherRequest) (*domain.Teacher, error) {
	teacher, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Subjects != nil {
		teacher.Subjects = *req.Subjects
	}
	if req.Phone != nil {
		teacher.Phone = *req.Phone
	}
	if req.Email != nil {
		teacher.Email = *req.Email
	}
	if req.PhotoURL != nil {
		teacher.PhotoURL = *req.PhotoURL
	}

	if err := s.repo.Update(teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *teacherService) List(search string, page, limit int) ([]*domain.Teacher, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	teachers, total, err := s.repo.List(search, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return teachers, common.NewMeta(page, limit, total), nil
}
