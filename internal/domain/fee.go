package domain

import "time"

// FeeStatus is the payment state of an invoice
type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeePaid    FeeStatus = "paid"
	FeeOverdue FeeStatus = "overdue"
)

// FeeInvoice is one fee demand against a student
type FeeInvoice struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	StudentID string    `gorm:"size:64;index" json:"student_id"`
	Term      string    `gorm:"size:32;index" json:"term"`
	Title     string    `gorm:"size:128" json:"title"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `gorm:"type:date" json:"due_date"`
	Status    FeeStatus `gorm:"size:16;index;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FeeInvoice) TableName() string {
	return "fee_invoices"
}

// EffectiveStatus derives overdue from the due date; the stored status
// stays authoritative once paid.
func (f *FeeInvoice) EffectiveStatus(now time.Time) FeeStatus {
	if f.Status == FeePaid {
		return FeePaid
	}
	if now.After(f.DueDate) {
		return FeeOverdue
	}
	return f.Status
}

// FeePayment records one payment against an invoice
type FeePayment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID string    `gorm:"size:64;index" json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Method    string    `gorm:"size:32" json:"method"` // cash, card, transfer
	Reference string    `gorm:"size:128" json:"reference"`
	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (FeePayment) TableName() string {
	return "fee_payments"
}

// CreateInvoiceRequest raises a fee invoice
type CreateInvoiceRequest struct {
	StudentID string    `json:"student_id" binding:"required"`
	Term      string    `json:"term" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	DueDate   time.Time `json:"due_date" binding:"required"`
}

// RecordPaymentRequest records a payment against an invoice
type RecordPaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=cash card transfer"`
	Reference string  `json:"reference"`
}
