package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	"gorm.io/gorm"
)

// StudentService handles student enrollment and records
type StudentService interface {
	Create(req *domain.CreateStudentRequest) (*domain.Student, error)
	Get(id string) (*domain.Student, error)
	Update(id string, req *domain.UpdateStudentRequest) (*domain.Student, error)
	Delete(id string) error
	List(classID, search string, page, limit int) ([]*domain.Student, *common.Meta, error)
}

type studentService struct {
	repo      repository.StudentRepository
	classRepo repository.ClassRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(repo repository.StudentRepository, classRepo repository.ClassRepository) StudentService {
	return &studentService{repo: repo, classRepo: classRepo}
}

func (s *studentService) Create(req *domain.CreateStudentRequest) (*domain.Student, error) {
	if _, err := s.repo.FindByAdmissionNo(req.AdmissionNo); err == nil {
		return nil, common.NewValidationError(map[string]string{"admission_no": "admission number already in use"})
	}
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		return nil, common.NewValidationError(map[string]string{"class_id": "unknown class"})
	}

	student := &domain.Student{
		ID:           uuid.New().String(),
		AdmissionNo:  req.AdmissionNo,
		Name:         req.Name,
		Gender:       req.Gender,
		DateOfBirth:  req.DateOfBirth,
		ClassID:      req.ClassID,
		GuardianName: req.GuardianName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		PhotoURL:     req.PhotoURL,
	}
	if err := s.repo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Get(id string) (*domain.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) Update(id string, req *domain.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = req.DateOfBirth
	}
	if req.ClassID != nil {
		if _, err := s.classRepo.FindByID(*req.ClassID); err != nil {
			return nil, common.NewValidationError(map[string]string{"class_id": "unknown class"})
		}
		student.ClassID = *req.ClassID
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.PhotoURL != nil {
		student.PhotoURL = *req.PhotoURL
	}

	if err := s.repo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *studentService) List(classID, search string, page, limit int) ([]*domain.Student, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	students, total, err := s.repo.List(classID, search, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return students, common.NewMeta(page, limit, total), nil
}
