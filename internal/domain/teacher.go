package domain

import "time"

// Teacher is one staff teaching record
type Teacher struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	EmployeeNo string    `gorm:"size:32;uniqueIndex" json:"employee_no"`
	UserID     string    `gorm:"size:64;index" json:"user_id"`
	Name       string    `gorm:"size:128" json:"name"`
	Subjects   string    `gorm:"size:255" json:"subjects"` // comma-separated subject names
	Phone      string    `gorm:"size:32" json:"phone"`
	Email      string    `gorm:"size:255" json:"email"`
	PhotoURL   string    `gorm:"size:512" json:"photo_url"`
	JoinedAt   time.Time `json:"joined_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// CreateTeacherRequest is the payload to register a teacher
type CreateTeacherRequest struct {
	EmployeeNo string     `json:"employee_no" binding:"required"`
	Name       string     `json:"name" binding:"required"`
	Subjects   string     `json:"subjects"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email" binding:"omitempty,email"`
	PhotoURL   string     `json:"photo_url"`
	JoinedAt   *time.Time `json:"joined_at"`
}

// UpdateTeacherRequest edits a teacher; nil fields are left untouched
type UpdateTeacherRequest struct {
	Name     *string `json:"name"`
	Subjects *string `json:"subjects"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	PhotoURL *string `json:"photo_url"`
}
