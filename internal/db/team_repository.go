package db

import (
	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	database *gorm.DB
}

func NewTeamRepository(database *gorm.DB) *TeamRepository {
	return &TeamRepository{database: database}
}

func (repo *TeamRepository) ListAll() ([]models.Team, error) {
	teams := make([]models.Team, 0)
	if err := repo.database.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (repo *TeamRepository) FindWithPlayers(teamID uint) (models.Team, error) {
	var team models.Team
	if err := repo.database.
		Preload("Players", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("full_name ASC")
		}).
		First(&team, teamID).Error; err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (repo *TeamRepository) Create(team *models.Team) error {
	return repo.database.Create(team).Error
}

func (repo *TeamRepository) Delete(teamID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var playerIDs []uint
		if err := tx.Model(&models.Player{}).Where("team_id = ?", teamID).Pluck("id", &playerIDs).Error; err != nil {
			return err
		}
		if len(playerIDs) > 0 {
			if err := tx.Where("player_id IN ?", playerIDs).Delete(&models.Assessment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.Player{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, teamID).Error
	})
}

func (repo *TeamRepository) CreatePlayer(player *models.Player) error {
	return repo.database.Create(player).Error
}

func (repo *TeamRepository) FindPlayer(playerID uint) (models.Player, error) {
	var player models.Player
	if err := repo.database.First(&player, playerID).Error; err != nil {
		return models.Player{}, err
	}
	return player, nil
}

func (repo *TeamRepository) CreateAssessment(assessment *models.Assessment) error {
	return repo.database.Create(assessment).Error
}

func (repo *TeamRepository) ListAssessmentsByPlayer(playerID uint) ([]models.Assessment, error) {
	assessments := make([]models.Assessment, 0)
	if err := repo.database.
		Where("player_id = ?", playerID).
		Order("recorded_at ASC, id ASC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
