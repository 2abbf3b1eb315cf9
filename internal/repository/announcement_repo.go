package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// AnnouncementRepository is the announcement data access layer
type AnnouncementRepository interface {
	Create(a *domain.Announcement) error
	FindByID(id string) (*domain.Announcement, error)
	List(audience string, page, limit int) ([]*domain.Announcement, int64, error)
	Update(a *domain.Announcement) error
	Delete(id string) error
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(a *domain.Announcement) error {
	return r.db.Create(a).Error
}

func (r *announcementRepository) FindByID(id string) (*domain.Announcement, error) {
	var a domain.Announcement
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns announcements visible to the given audience. Audience
// "all" notices are always included.
func (r *announcementRepository) List(audience string, page, limit int) ([]*domain.Announcement, int64, error) {
	query := r.db.Model(&domain.Announcement{})
	if audience != "" && audience != domain.AudienceAll {
		query = query.Where("audience IN (?, ?)", domain.AudienceAll, audience)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*domain.Announcement
	offset := (page - 1) * limit
	if err := query.Order("published_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *announcementRepository) Update(a *domain.Announcement) error {
	return r.db.Save(a).Error
}

func (r *announcementRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Announcement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
