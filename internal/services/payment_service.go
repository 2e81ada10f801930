package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
)

type PaymentStore interface {
	ListByUser(userID uint) ([]models.Payment, error)
	FindByID(paymentID uint) (models.Payment, error)
	Create(payment *models.Payment) error
	UpdateStatus(paymentID uint, status string) error
	RegisterWithActivity(payment *models.Payment, activity string) error
}

type PaymentService struct {
	payments PaymentStore
}

func NewPaymentService(payments PaymentStore) *PaymentService {
	return &PaymentService{payments: payments}
}

// SubmitTransferProof records a student-submitted bank transfer. It enters
// the ledger as pending until an admin settles or rejects it.
func (service *PaymentService) SubmitTransferProof(userID uint, amount float64, proofURL string, now time.Time) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	payment := models.Payment{
		UserID:   userID,
		Amount:   amount,
		Method:   models.PaymentMethodTransfer,
		Status:   models.PaymentStatusPending,
		ProofURL: strings.TrimSpace(proofURL),
		PaidAt:   now,
	}
	if err := service.payments.Create(&payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// RegisterPayment is the admin path: the payment enters settled, and naming
// an activity also rewrites the payer's activity profile.
func (service *PaymentService) RegisterPayment(userID uint, amount float64, method string, activity string, paidAt time.Time) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if method != models.PaymentMethodCash && method != models.PaymentMethodTransfer {
		return models.Payment{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, method)
	}

	normalizedActivity := ""
	if strings.TrimSpace(activity) != "" {
		parsed, err := ParseActivity(activity)
		if err != nil {
			return models.Payment{}, err
		}
		normalizedActivity = parsed
	}

	payment := models.Payment{
		UserID:   userID,
		Amount:   amount,
		Method:   method,
		Status:   models.PaymentStatusPaid,
		Activity: normalizedActivity,
		PaidAt:   paidAt,
	}
	if err := service.payments.RegisterWithActivity(&payment, normalizedActivity); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// ApprovePayment settles a pending transfer.
func (service *PaymentService) ApprovePayment(paymentID uint) error {
	return service.transitionPending(paymentID, models.PaymentStatusPaid)
}

// RejectPayment marks a pending transfer as overdue; the record is kept, not
// deleted, so the ledger stays complete.
func (service *PaymentService) RejectPayment(paymentID uint) error {
	return service.transitionPending(paymentID, models.PaymentStatusOverdue)
}

func (service *PaymentService) transitionPending(paymentID uint, status string) error {
	payment, err := service.payments.FindByID(paymentID)
	if err != nil {
		return err
	}
	if payment.Status != models.PaymentStatusPending {
		return fmt.Errorf("%w: payment %d is not pending", ErrInvalidInput, paymentID)
	}
	return service.payments.UpdateStatus(paymentID, status)
}

// QuotaForUser assembles the derived quota window for one account.
func (service *PaymentService) QuotaForUser(user models.User, now time.Time) (QuotaWindow, error) {
	payments, err := service.payments.ListByUser(user.ID)
	if err != nil {
		return QuotaWindow{}, err
	}
	return BuildQuotaWindow(user.CreatedAt, payments, now), nil
}
