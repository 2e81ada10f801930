package db

import (
	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type RoutineRepository struct {
	database *gorm.DB
}

func NewRoutineRepository(database *gorm.DB) *RoutineRepository {
	return &RoutineRepository{database: database}
}

func (repo *RoutineRepository) ListAll() ([]models.Routine, error) {
	routines := make([]models.Routine, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

// ListVisibleToUser returns routines assigned to the user plus unassigned
// templates; the activity filter is applied afterwards by the caller.
func (repo *RoutineRepository) ListVisibleToUser(userID uint) ([]models.Routine, error) {
	routines := make([]models.Routine, 0)
	if err := repo.database.
		Where("assigned_to = ? OR assigned_to IS NULL", userID).
		Order("created_at DESC, id DESC").
		Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (repo *RoutineRepository) FindWithItems(routineID uint) (models.Routine, error) {
	var routine models.Routine
	if err := repo.database.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("day_number ASC, order_index ASC, id ASC")
		}).
		First(&routine, routineID).Error; err != nil {
		return models.Routine{}, err
	}
	return routine, nil
}

// CreateWithItems writes the routine header and its items atomically, the
// same all-or-nothing shape the routine builder submits.
func (repo *RoutineRepository) CreateWithItems(routine *models.Routine, items []models.RoutineItem) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		routine.Items = nil
		if err := tx.Create(routine).Error; err != nil {
			return err
		}
		for index := range items {
			items[index].RoutineID = routine.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (repo *RoutineRepository) Assign(routineID uint, userID *uint) error {
	return repo.database.Model(&models.Routine{}).Where("id = ?", routineID).Update("assigned_to", userID).Error
}

func (repo *RoutineRepository) Delete(routineID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("routine_id = ?", routineID).Delete(&models.RoutineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Routine{}, routineID).Error
	})
}
