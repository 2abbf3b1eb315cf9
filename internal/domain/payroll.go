package domain

import "time"

// PayrollStatus is the payment state of a payroll record
type PayrollStatus string

const (
	PayrollPending PayrollStatus = "pending"
	PayrollPaid    PayrollStatus = "paid"
)

// PayrollRecord is one teacher's salary for one month.
// Net pay is always basic + allowances - deductions.
type PayrollRecord struct {
	ID         uint64        `gorm:"primaryKey;autoIncrement" json:"id"`
	TeacherID  string        `gorm:"size:64;index:idx_payroll_teacher_month,unique" json:"teacher_id"`
	Month      string        `gorm:"size:7;index:idx_payroll_teacher_month,unique" json:"month"` // YYYY-MM
	Basic      float64       `json:"basic"`
	Allowances float64       `json:"allowances"`
	Deductions float64       `json:"deductions"`
	Net        float64       `json:"net"`
	Status     PayrollStatus `gorm:"size:16;default:'pending'" json:"status"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}

// ComputeNet recalculates the net pay from its components
func (p *PayrollRecord) ComputeNet() {
	p.Net = p.Basic + p.Allowances - p.Deductions
}

// CreatePayrollRequest creates one month's payroll entry for a teacher
type CreatePayrollRequest struct {
	TeacherID  string  `json:"teacher_id" binding:"required"`
	Month      string  `json:"month" binding:"required,len=7"`
	Basic      float64 `json:"basic" binding:"required,gt=0"`
	Allowances float64 `json:"allowances" binding:"min=0"`
	Deductions float64 `json:"deductions" binding:"min=0"`
}
