package domain

import "time"

// AttendanceStatus is the per-day presence status of a student
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// ValidAttendanceStatus reports whether the value is a known status
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// Attendance is one student's status for one date. (student, date) is
// unique; marking again overwrites.
type Attendance struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID string           `gorm:"size:64;index:idx_attendance_student_date,unique" json:"student_id"`
	ClassID   string           `gorm:"size:64;index" json:"class_id"`
	Date      time.Time        `gorm:"type:date;index:idx_attendance_student_date,unique" json:"date"`
	Status    AttendanceStatus `gorm:"size:16" json:"status"`
	Remark    string           `gorm:"size:255" json:"remark"`
	MarkedBy  string           `gorm:"size:64" json:"marked_by"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// MarkAttendanceRequest marks attendance for one class on one date
type MarkAttendanceRequest struct {
	ClassID string                 `json:"class_id" binding:"required"`
	Date    time.Time              `json:"date" binding:"required"`
	Entries []AttendanceEntryInput `json:"entries" binding:"required,min=1,dive"`
}

// AttendanceEntryInput is one student's status within a bulk mark
type AttendanceEntryInput struct {
	StudentID string           `json:"student_id" binding:"required"`
	Status    AttendanceStatus `json:"status" binding:"required"`
	Remark    string           `json:"remark"`
}
