package service

import (
	"time"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
)

// AttendanceService handles per-day attendance marking and queries
type AttendanceService interface {
	Mark(markedBy string, req *domain.MarkAttendanceRequest) ([]*domain.Attendance, error)
	ByClassAndDate(classID string, date time.Time) ([]*domain.Attendance, error)
	ByStudent(studentID string, from, to time.Time) ([]*domain.Attendance, error)
}

type attendanceService struct {
	repo      repository.AttendanceRepository
	classRepo repository.ClassRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(repo repository.AttendanceRepository, classRepo repository.ClassRepository) AttendanceService {
	return &attendanceService{repo: repo, classRepo: classRepo}
}

// Mark records one class's attendance for one date. Re-marking the same
// (student, date) overwrites the previous status.
func (s *attendanceService) Mark(markedBy string, req *domain.MarkAttendanceRequest) ([]*domain.Attendance, error) {
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		return nil, common.NewValidationError(map[string]string{"class_id": "unknown class"})
	}
	for _, e := range req.Entries {
		if !domain.ValidAttendanceStatus(e.Status) {
			return nil, common.NewValidationError(map[string]string{"status": "unknown attendance status: " + string(e.Status)})
		}
	}

	date := req.Date.Truncate(24 * time.Hour)
	entries := make([]domain.Attendance, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.Attendance{
			StudentID: e.StudentID,
			ClassID:   req.ClassID,
			Date:      date,
			Status:    e.Status,
			Remark:    e.Remark,
			MarkedBy:  markedBy,
		}
	}
	if err := s.repo.Upsert(entries); err != nil {
		return nil, err
	}

	out := make([]*domain.Attendance, len(entries))
	for i := range entries {
		out[i] = &entries[i]
	}
	return out, nil
}

func (s *attendanceService) ByClassAndDate(classID string, date time.Time) ([]*domain.Attendance, error) {
	return s.repo.FindByClassAndDate(classID, date)
}

func (s *attendanceService) ByStudent(studentID string, from, to time.Time) ([]*domain.Attendance, error) {
	return s.repo.FindByStudent(studentID, from, to)
}
