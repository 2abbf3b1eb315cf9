package domain

import "time"

// SchoolClass is one class/section (e.g. grade 7, section B)
type SchoolClass struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	Name           string    `gorm:"size:64" json:"name"`
	Grade          int       `gorm:"index" json:"grade"`
	Section        string    `gorm:"size:8" json:"section"`
	ClassTeacherID string    `gorm:"size:64;index" json:"class_teacher_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SchoolClass) TableName() string {
	return "classes"
}

// CreateClassRequest is the payload to create a class
type CreateClassRequest struct {
	Name           string `json:"name" binding:"required"`
	Grade          int    `json:"grade" binding:"required,min=1,max=12"`
	Section        string `json:"section" binding:"required"`
	ClassTeacherID string `json:"class_teacher_id"`
}
