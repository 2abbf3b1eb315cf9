package service

import (
	"context"
	"fmt"

	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	pkgcache "github.com/schoolhub/sims-backend/pkg/cache"
)

// ScheduleService manages the timetable. A class or teacher can hold at
// most one entry per (day, period); conflicting slots are rejected.
type ScheduleService interface {
	CreateEntry(req *domain.CreateScheduleEntryRequest) (*domain.ScheduleEntry, error)
	ByClass(ctx context.Context, classID string) ([]*domain.ScheduleEntry, error)
	ByTeacher(ctx context.Context, teacherID string) ([]*domain.ScheduleEntry, error)
	DeleteEntry(id uint64) error
}

type scheduleService struct {
	repo      repository.ScheduleRepository
	classRepo repository.ClassRepository
	cache     pkgcache.Service
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(repo repository.ScheduleRepository, classRepo repository.ClassRepository, cache pkgcache.Service) ScheduleService {
	return &scheduleService{repo: repo, classRepo: classRepo, cache: cache}
}

func (s *scheduleService) CreateEntry(req *domain.CreateScheduleEntryRequest) (*domain.ScheduleEntry, error) {
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		return nil, common.NewValidationError(map[string]string{
			"class_id": "class not found",
		})
	}

	taken, err := s.repo.ClassSlotTaken(req.ClassID, req.DayOfWeek, req.Period)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.ErrScheduleConflict
	}
	taken, err = s.repo.TeacherSlotTaken(req.TeacherID, req.DayOfWeek, req.Period)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.ErrScheduleConflict
	}

	entry := &domain.ScheduleEntry{
		ClassID:   req.ClassID,
		DayOfWeek: req.DayOfWeek,
		Period:    req.Period,
		Subject:   req.Subject,
		TeacherID: req.TeacherID,
		Room:      req.Room,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	s.invalidate()
	return entry, nil
}

func (s *scheduleService) ByClass(ctx context.Context, classID string) ([]*domain.ScheduleEntry, error) {
	key := fmt.Sprintf("%sclass:%s", pkgcache.PrefixSchedule, classID)
	if s.cache != nil {
		var cached []*domain.ScheduleEntry
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}
	entries, err := s.repo.ListByClass(classID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, entries, pkgcache.TTLSchedule)
	}
	return entries, nil
}

func (s *scheduleService) ByTeacher(ctx context.Context, teacherID string) ([]*domain.ScheduleEntry, error) {
	key := fmt.Sprintf("%steacher:%s", pkgcache.PrefixSchedule, teacherID)
	if s.cache != nil {
		var cached []*domain.ScheduleEntry
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}
	entries, err := s.repo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, entries, pkgcache.TTLSchedule)
	}
	return entries, nil
}

func (s *scheduleService) DeleteEntry(id uint64) error {
	if err := s.repo.Delete(id); err != nil {
		return common.ErrNotFound
	}
	s.invalidate()
	return nil
}

func (s *scheduleService) invalidate() {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeleteByPrefix(context.Background(), pkgcache.PrefixSchedule)
}
