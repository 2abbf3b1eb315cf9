package repository

import (
	"github.com/schoolhub/sims-backend/internal/domain"
	"gorm.io/gorm"
)

// FeeRepository is the fee invoice and payment data access layer
type FeeRepository interface {
	CreateInvoice(invoice *domain.FeeInvoice) error
	FindInvoiceByID(id string) (*domain.FeeInvoice, error)
	ListInvoices(studentID string, status domain.FeeStatus, page, limit int) ([]*domain.FeeInvoice, int64, error)
	UpdateInvoiceStatus(id string, status domain.FeeStatus) error
	CreatePayment(payment *domain.FeePayment) error
	ListPayments(invoiceID string) ([]*domain.FeePayment, error)
	CountByStatus(status domain.FeeStatus) (int64, error)
}

type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) CreateInvoice(invoice *domain.FeeInvoice) error {
	return r.db.Create(invoice).Error
}

func (r *feeRepository) FindInvoiceByID(id string) (*domain.FeeInvoice, error) {
	var invoice domain.FeeInvoice
	if err := r.db.Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *feeRepository) ListInvoices(studentID string, status domain.FeeStatus, page, limit int) ([]*domain.FeeInvoice, int64, error) {
	query := r.db.Model(&domain.FeeInvoice{})
	if studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var invoices []*domain.FeeInvoice
	offset := (page - 1) * limit
	if err := query.Order("due_date ASC").Offset(offset).Limit(limit).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (r *feeRepository) UpdateInvoiceStatus(id string, status domain.FeeStatus) error {
	res := r.db.Model(&domain.FeeInvoice{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *feeRepository) CreatePayment(payment *domain.FeePayment) error {
	return r.db.Create(payment).Error
}

func (r *feeRepository) ListPayments(invoiceID string) ([]*domain.FeePayment, error) {
	var payments []*domain.FeePayment
	err := r.db.Where("invoice_id = ?", invoiceID).Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

func (r *feeRepository) CountByStatus(status domain.FeeStatus) (int64, error) {
	var total int64
	err := r.db.Model(&domain.FeeInvoice{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
