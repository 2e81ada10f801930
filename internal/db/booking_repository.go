package db

import (
	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type BookingRepository struct {
	database *gorm.DB
}

func NewBookingRepository(database *gorm.DB) *BookingRepository {
	return &BookingRepository{database: database}
}

func (repo *BookingRepository) ListByDateRange(fromDate string, toDate string) ([]models.PilatesBooking, error) {
	bookings := make([]models.PilatesBooking, 0)
	if err := repo.database.
		Where("date >= ? AND date <= ?", fromDate, toDate).
		Order("date ASC, hour ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (repo *BookingRepository) ListByUser(userID uint, fromDate string) ([]models.PilatesBooking, error) {
	bookings := make([]models.PilatesBooking, 0)
	query := repo.database.Where("user_id = ?", userID)
	if fromDate != "" {
		query = query.Where("date >= ?", fromDate)
	}
	if err := query.Order("date ASC, hour ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (repo *BookingRepository) CountSlot(date string, hour int) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.PilatesBooking{}).
		Where("date = ? AND hour = ?", date, hour).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *BookingRepository) CountForDate(date string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.PilatesBooking{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// InsertIfCapacity re-checks slot occupancy and inserts inside one
// transaction, so two racing requests cannot both take the last seat. The
// unique index on (user_id, date, hour) still backstops double-booking and
// comes back as gorm.ErrDuplicatedKey.
func (repo *BookingRepository) InsertIfCapacity(booking *models.PilatesBooking, maxCapacity int) (bool, error) {
	overbooked := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var occupancy int64
		if err := tx.Model(&models.PilatesBooking{}).
			Where("date = ? AND hour = ?", booking.Date, booking.Hour).
			Count(&occupancy).Error; err != nil {
			return err
		}
		if occupancy >= int64(maxCapacity) {
			overbooked = true
			return nil
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return false, err
	}
	return !overbooked, nil
}

func (repo *BookingRepository) Delete(userID uint, date string, hour int) (int64, error) {
	result := repo.database.
		Where("user_id = ? AND date = ? AND hour = ?", userID, date, hour).
		Delete(&models.PilatesBooking{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
