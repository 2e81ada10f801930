package db

import (
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// LoadPilatesSettings always hits the database; scheduling rules must see
// admin edits without a restart.
func (repo *SettingsRepository) LoadPilatesSettings() (models.PilatesSettings, error) {
	var settings models.PilatesSettings
	result := repo.database.Order("id ASC").Limit(1).Find(&settings)
	if result.Error != nil {
		return models.PilatesSettings{}, result.Error
	}
	if result.RowsAffected == 0 {
		settings = models.DefaultPilatesSettings()
		if err := repo.database.Create(&settings).Error; err != nil {
			return models.PilatesSettings{}, err
		}
	}
	return settings, nil
}

func (repo *SettingsRepository) SavePilatesSettings(settings *models.PilatesSettings) error {
	current, err := repo.LoadPilatesSettings()
	if err != nil {
		return err
	}
	settings.ID = current.ID
	settings.UpdatedAt = time.Now()
	return repo.database.Save(settings).Error
}

func (repo *SettingsRepository) ListActivityPrices() ([]models.ActivityPrice, error) {
	prices := make([]models.ActivityPrice, 0)
	if err := repo.database.Order("activity_type ASC").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (repo *SettingsRepository) UpsertActivityPrice(activityType string, price float64) error {
	record := models.ActivityPrice{
		ActivityType: activityType,
		Price:        price,
		UpdatedAt:    time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "activity_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(&record).Error
}
