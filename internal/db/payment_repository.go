package db

import (
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	database *gorm.DB
}

func NewPaymentRepository(database *gorm.DB) *PaymentRepository {
	return &PaymentRepository{database: database}
}

func (repo *PaymentRepository) ListByUser(userID uint) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("paid_at DESC, id DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (repo *PaymentRepository) ListAll(limit int) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	query := repo.database.Order("paid_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (repo *PaymentRepository) ListByStatus(status string) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := repo.database.
		Where("status = ?", status).
		Order("paid_at DESC, id DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (repo *PaymentRepository) FindByID(paymentID uint) (models.Payment, error) {
	var payment models.Payment
	if err := repo.database.First(&payment, paymentID).Error; err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (repo *PaymentRepository) Create(payment *models.Payment) error {
	return repo.database.Create(payment).Error
}

func (repo *PaymentRepository) UpdateStatus(paymentID uint, status string) error {
	return repo.database.Model(&models.Payment{}).Where("id = ?", paymentID).Update("status", status).Error
}

// RegisterWithActivity inserts the payment and, when an activity is named,
// overwrites the payer's activity profile in the same transaction.
func (repo *PaymentRepository) RegisterWithActivity(payment *models.Payment, activity string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if activity == "" {
			return nil
		}
		return tx.Model(&models.User{}).
			Where("id = ?", payment.UserID).
			Update("activity_type", activity).Error
	})
}

func (repo *PaymentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Payment{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PaymentRepository) SumPaidBetween(from time.Time, to time.Time) (float64, error) {
	var total float64
	if err := repo.database.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND paid_at >= ? AND paid_at < ?", models.PaymentStatusPaid, from, to).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
