package domain

import "time"

// Announcement audiences
const (
	AudienceAll      = "all"
	AudienceTeachers = "teachers"
	AudienceStudents = "students"
)

// Announcement is a school-wide notice
type Announcement struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	Body        string    `gorm:"type:text" json:"body"`
	Audience    string    `gorm:"size:16;index;default:'all'" json:"audience"`
	AuthorID    string    `gorm:"size:64" json:"author_id"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// CreateAnnouncementRequest is the payload to publish an announcement
type CreateAnnouncementRequest struct {
	Title       string     `json:"title" binding:"required"`
	Body        string     `json:"body" binding:"required"`
	Audience    string     `json:"audience" binding:"omitempty,oneof=all teachers students"`
	PublishedAt *time.Time `json:"published_at"`
}
