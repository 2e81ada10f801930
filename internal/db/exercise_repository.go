package db

import (
	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) ListAll() ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByID(exerciseID uint) (models.Exercise, error) {
	var exercise models.Exercise
	if err := repo.database.First(&exercise, exerciseID).Error; err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *ExerciseRepository) Save(exercise *models.Exercise) error {
	return repo.database.Save(exercise).Error
}

func (repo *ExerciseRepository) Delete(exerciseID uint) error {
	return repo.database.Delete(&models.Exercise{}, exerciseID).Error
}
