package domain

import "time"

// Exam is one scheduled examination for a class
type Exam struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Term      string    `gorm:"size:32;index" json:"term"`
	ClassID   string    `gorm:"size:64;index" json:"class_id"`
	Date      time.Time `gorm:"type:date" json:"date"`
	MaxMarks  int       `json:"max_marks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamResult is one student's marks in one subject of an exam
type ExamResult struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ExamID    string    `gorm:"size:64;index:idx_result_exam_student_subject,unique" json:"exam_id"`
	StudentID string    `gorm:"size:64;index:idx_result_exam_student_subject,unique" json:"student_id"`
	Subject   string    `gorm:"size:64;index:idx_result_exam_student_subject,unique" json:"subject"`
	Marks     float64   `json:"marks"`
	Grade     string    `gorm:"size:4" json:"grade"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}

// GradeFor maps a percentage score onto a letter grade
func GradeFor(marks float64, maxMarks int) string {
	if maxMarks <= 0 {
		return ""
	}
	pct := marks / float64(maxMarks) * 100
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	default:
		return "F"
	}
}

// CreateExamRequest is the payload to schedule an exam
type CreateExamRequest struct {
	Name     string    `json:"name" binding:"required"`
	Term     string    `json:"term" binding:"required"`
	ClassID  string    `json:"class_id" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	MaxMarks int       `json:"max_marks" binding:"required,min=1"`
}

// RecordResultsRequest records marks for students in one subject
type RecordResultsRequest struct {
	Subject string             `json:"subject" binding:"required"`
	Results []ResultEntryInput `json:"results" binding:"required,min=1,dive"`
}

// ResultEntryInput is one student's marks
type ResultEntryInput struct {
	StudentID string  `json:"student_id" binding:"required"`
	Marks     float64 `json:"marks" binding:"min=0"`
}
