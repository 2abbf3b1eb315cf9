package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/schoolhub/sims-backend/internal/common"
	"github.com/schoolhub/sims-backend/internal/domain"
	"github.com/schoolhub/sims-backend/internal/repository"
	"gorm.io/gorm"
)

// FeeService handles fee invoices and payments
type FeeService interface {
	CreateInvoice(req *domain.CreateInvoiceRequest) (*domain.FeeInvoice, error)
	GetInvoice(id string) (*domain.FeeInvoice, error)
	ListInvoices(studentID string, status domain.FeeStatus, page, limit int) ([]*domain.FeeInvoice, *common.Meta, error)
	RecordPayment(invoiceID string, req *domain.RecordPaymentRequest) (*domain.FeePayment, error)
	ListPayments(invoiceID string) ([]*domain.FeePayment, error)
}

type feeService struct {
	repo        repository.FeeRepository
	studentRepo repository.StudentRepository
}

// NewFeeService creates a new FeeService
func NewFeeService(repo repository.FeeRepository, studentRepo repository.StudentRepository) FeeService {
	return &feeService{repo: repo, studentRepo: studentRepo}
}

func (s *feeService) CreateInvoice(req *domain.CreateInvoiceRequest) (*domain.FeeInvoice, error) {
	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		return nil, common.NewValidationError(map[string]string{"student_id": "unknown student"})
	}
	invoice := &domain.FeeInvoice{
		ID:        uuid.New().String(),
		StudentID: req.StudentID,
		Term:      req.Term,
		Title:     req.Title,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Status:    domain.FeePending,
	}
	if err := s.repo.CreateInvoice(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *feeService) GetInvoice(id string) (*domain.FeeInvoice, error) {
	invoice, err := s.repo.FindInvoiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return invoice, nil
}

func (s *feeService) ListInvoices(studentID string, status domain.FeeStatus, page, limit int) ([]*domain.FeeInvoice, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	invoices, total, err := s.repo.ListInvoices(studentID, status, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return invoices, common.NewMeta(page, limit, total), nil
}

// RecordPayment registers a payment and marks the invoice paid when the
// amount covers it. Paying an already-paid invoice is rejected.
func (s *feeService) RecordPayment(invoiceID string, req *domain.RecordPaymentRequest) (*domain.FeePayment, error) {
	invoice, err := s.GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.FeePaid {
		return nil, common.NewValidationError(map[string]string{"invoice": "invoice already paid"})
	}
	if req.Amount < invoice.Amount {
		return nil, common.NewValidationError(map[string]string{"amount": "partial payments are not supported"})
	}

	payment := &domain.FeePayment{
		InvoiceID: invoiceID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		PaidAt:    time.Now(),
	}
	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateInvoiceStatus(invoiceID, domain.FeePaid); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *feeService) ListPayments(invoiceID string) ([]*domain.FeePayment, error) {
	if _, err := s.GetInvoice(invoiceID); err != nil {
		return nil, err
	}
	return s.repo.ListPayments(invoiceID)
}
