package db

import (
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

func (repo *ProgressRepository) ListBenchmarksByUser(userID uint) ([]models.Benchmark, error) {
	benchmarks := make([]models.Benchmark, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("recorded_at ASC, id ASC").
		Find(&benchmarks).Error; err != nil {
		return nil, err
	}
	return benchmarks, nil
}

func (repo *ProgressRepository) CreateBenchmark(benchmark *models.Benchmark) error {
	return repo.database.Create(benchmark).Error
}

func (repo *ProgressRepository) CreateSession(session *models.SessionLog) error {
	return repo.database.Create(session).Error
}

func (repo *ProgressRepository) FindOpenSession(userID uint) (models.SessionLog, bool, error) {
	var session models.SessionLog
	result := repo.database.
		Where("user_id = ? AND finished_at IS NULL", userID).
		Order("started_at DESC, id DESC").
		Limit(1).
		Find(&session)
	if result.Error != nil {
		return models.SessionLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SessionLog{}, false, nil
	}
	return session, true, nil
}

func (repo *ProgressRepository) FinishSession(sessionID uint, finishedAt time.Time, durationSeconds int) error {
	return repo.database.Model(&models.SessionLog{}).Where("id = ?", sessionID).Updates(map[string]any{
		"finished_at":      finishedAt,
		"duration_seconds": durationSeconds,
	}).Error
}

func (repo *ProgressRepository) ListFinishedSessions(userID uint) ([]models.SessionLog, error) {
	sessions := make([]models.SessionLog, 0)
	if err := repo.database.
		Where("user_id = ? AND finished_at IS NOT NULL", userID).
		Order("started_at DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
