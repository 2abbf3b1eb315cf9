package domain

import "time"

// ScheduleEntry is one timetable slot for a class. A class or a teacher
// can hold at most one entry per (day, period).
type ScheduleEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ClassID   string    `gorm:"size:64;index:idx_schedule_class_slot,unique" json:"class_id"`
	DayOfWeek int       `gorm:"index:idx_schedule_class_slot,unique" json:"day_of_week"` // 1=Monday .. 7=Sunday
	Period    int       `gorm:"index:idx_schedule_class_slot,unique" json:"period"`
	Subject   string    `gorm:"size:64" json:"subject"`
	TeacherID string    `gorm:"size:64;index" json:"teacher_id"`
	Room      string    `gorm:"size:32" json:"room"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

// CreateScheduleEntryRequest adds one timetable slot
type CreateScheduleEntryRequest struct {
	ClassID   string `json:"class_id" binding:"required"`
	DayOfWeek int    `json:"day_of_week" binding:"required,min=1,max=7"`
	Period    int    `json:"period" binding:"required,min=1,max=12"`
	Subject   string `json:"subject" binding:"required"`
	TeacherID string `json:"teacher_id" binding:"required"`
	Room      string `json:"room"`
}
