package domain

import "time"

// Student is one enrolled student record
type Student struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	AdmissionNo  string     `gorm:"size:32;uniqueIndex" json:"admission_no"`
	UserID       string     `gorm:"size:64;index" json:"user_id"`
	Name         string     `gorm:"size:128" json:"name"`
	Gender       string     `gorm:"size:16" json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	ClassID      string     `gorm:"size:64;index" json:"class_id"`
	GuardianName string     `gorm:"size:128" json:"guardian_name"`
	Phone        string     `gorm:"size:32" json:"phone"`
	Email        string     `gorm:"size:255" json:"email"`
	Address      string     `gorm:"size:512" json:"address"`
	PhotoURL     string     `gorm:"size:512" json:"photo_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// CreateStudentRequest is the payload to enroll a student
type CreateStudentRequest struct {
	AdmissionNo  string     `json:"admission_no" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	Gender       string     `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	ClassID      string     `json:"class_id" binding:"required"`
	GuardianName string     `json:"guardian_name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email" binding:"omitempty,email"`
	Address      string     `json:"address"`
	PhotoURL     string     `json:"photo_url"`
}

// UpdateStudentRequest is the payload to edit a student; nil fields are
// left untouched.
type UpdateStudentRequest struct {
	Name         *string    `json:"name"`
	Gender       *string    `json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	ClassID      *string    `json:"class_id"`
	GuardianName *string    `json:"guardian_name"`
	Phone        *string    `json:"phone"`
	Email        *string    `json:"email"`
	Address      *string    `json:"address"`
	PhotoURL     *string    `json:"photo_url"`
}
