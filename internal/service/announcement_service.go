package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	pkgcache "github.com/schoolhub/sims-backend/pkg/cache"
)

// AnnouncementService handles school-wide notices. Lists are cached in
// Redis with a short TTL; writes invalidate the cache and broadcast a
// real-time event.
type AnnouncementService interface {
	Create(authorID string, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error)
	Get(id string) (*domain.Announcement, error)
	List(ctx context.Context, audience string, page, limit int) ([]*domain.Announcement, *common.Meta, error)
	Update(id string, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error)
	Delete(id string) error
}

type announcementService struct {
	repo     repository.AnnouncementRepository
	cache    pkgcache.Service
	notifier Notifier
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(repo repository.AnnouncementRepository, cache pkgcache.Service, notifier Notifier) AnnouncementService {
	return &announcementService{repo: repo, cache: cache, notifier: notifier}
}

func (s *announcementService) Create(authorID string, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error) {
	audience := req.Audience
	if audience == "" {
		audience = domain.AudienceAll
	}
	published := time.Now()
	if req.PublishedAt != nil {
		published = *req.PublishedAt
	}

	a := &domain.Announcement{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Body:        req.Body,
		Audience:    audience,
		AuthorID:    authorID,
		PublishedAt: published,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}

	s.invalidate()
	if s.notifier != nil {
		s.notifier.Broadcast("announcement.new", map[string]interface{}{
			"id":       a.ID,
			"title":    a.Title,
			"audience": a.Audience,
		})
	}
	return a, nil
}

func (s *announcementService) Get(id string) (*domain.Announcement, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return a, nil
}

type cachedAnnouncements struct {
	Items []*domain.Announcement `json:"items"`
	Meta  *common.Meta           `json:"meta"`
}

func (s *announcementService) List(ctx context.Context, audience string, page, limit int) ([]*domain.Announcement, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	key := fmt.Sprintf("%s%s:%d:%d", pkgcache.PrefixAnnouncements, audience, page, limit)
	if s.cache != nil {
		var cached cachedAnnouncements
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached.Items, cached.Meta, nil
		}
	}

	items, total, err := s.repo.List(audience, page, limit)
	if err != nil {
		return nil, nil, err
	}
	meta := common.NewMeta(page, limit, total)

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, cachedAnnouncements{Items: items, Meta: meta}, pkgcache.TTLAnnouncements)
	}
	return items, meta, nil
}

func (s *announcementService) Update(id string, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	a.Title = req.Title
	a.Body = req.Body
	if req.Audience != "" {
		a.Audience = req.Audience
	}
	if req.PublishedAt != nil {
		a.PublishedAt = *req.PublishedAt
	}
	if err := s.repo.Update(a); err != nil {
		return nil, err
	}
	s.invalidate()
	return a, nil
}

func (s *announcementService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return common.ErrNotFound
	}
	s.invalidate()
	return nil
}

func (s *announcementService) invalidate() {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeleteByPrefix(context.Background(), pkgcache.PrefixAnnouncements)
}
