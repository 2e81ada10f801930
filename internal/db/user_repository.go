package db

import (
	"strings"
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByDNI(dni string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("dni = ?", strings.TrimSpace(dni)).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByDNI(dni string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("dni = ?", strings.TrimSpace(dni)).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (repo *UserRepository) UpdateActivityType(userID uint, activityType string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("activity_type", activityType).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":        passwordHash,
		"must_change_password": mustChangePassword,
	}).Error
}

func (repo *UserRepository) ListStudents() ([]models.User, error) {
	students := make([]models.User, 0)
	if err := repo.database.
		Where("role = ?", models.RoleStudent).
		Order("full_name ASC, id ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *UserRepository) SearchStudents(query string, limit int) ([]models.User, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	students := make([]models.User, 0)
	if err := repo.database.
		Where("role = ? AND (full_name LIKE ? OR dni LIKE ?)", models.RoleStudent, pattern, pattern).
		Order("full_name ASC").
		Limit(limit).
		Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// CompleteOnboarding stores the health questionnaire and marks the user as
// onboarded in one transaction, so a crash cannot leave a student stuck with
// a half-filled profile.
func (repo *UserRepository) CompleteOnboarding(userID uint, profile *models.HealthProfile, updates map[string]any) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.HealthProfile{}).Error; err != nil {
			return err
		}
		profile.UserID = userID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		updates["onboarding_completed"] = true
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
	})
}

func (repo *UserRepository) FindHealthProfile(userID uint) (models.HealthProfile, bool, error) {
	var profile models.HealthProfile
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.HealthProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HealthProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *UserRepository) DeleteStudentAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.HealthProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PilatesBooking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Benchmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.SessionLog{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Routine{}).Where("assigned_to = ?", userID).Update("assigned_to", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

func (repo *UserRepository) CreatedSince(since time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).
		Where("role = ? AND created_at >= ?", models.RoleStudent, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
