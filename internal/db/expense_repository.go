package db

import (
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	database *gorm.DB
}

func NewExpenseRepository(database *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{database: database}
}

func (repo *ExpenseRepository) ListBetween(from time.Time, to time.Time) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := repo.database.
		Where("spent_at >= ? AND spent_at < ?", from, to).
		Order("spent_at DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (repo *ExpenseRepository) Create(expense *models.Expense) error {
	return repo.database.Create(expense).Error
}

func (repo *ExpenseRepository) Delete(expenseID uint) error {
	return repo.database.Delete(&models.Expense{}, expenseID).Error
}

func (repo *ExpenseRepository) SumBetween(from time.Time, to time.Time) (float64, error) {
	var total float64
	if err := repo.database.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("spent_at >= ? AND spent_at < ?", from, to).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *ExpenseRepository) SumByCategoryBetween(from time.Time, to time.Time) (map[string]float64, error) {
	type categoryTotal struct {
		Category string  `gorm:"column:category"`
		Total    float64 `gorm:"column:total"`
	}

	rows := make([]categoryTotal, 0)
	if err := repo.database.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("spent_at >= ? AND spent_at < ?", from, to).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Category] = row.Total
	}
	return totals, nil
}
