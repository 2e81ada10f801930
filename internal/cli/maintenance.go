// Package cli holds the maintenance commands run from the same binary as the
// server: bootstrapping the first admin account and recovering access to an
// existing one.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nicolasreynoso/forja/internal/db"
	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/security"
)

const tempPasswordLength = 12

// CreateAdmin provisions an admin account with a generated temporary
// password, printed once to stdout. Refuses to run when the DNI is taken.
func CreateAdmin(databasePath string, dni string, fullName string) error {
	dni = strings.TrimSpace(dni)
	fullName = strings.TrimSpace(fullName)
	if dni == "" || fullName == "" {
		return errors.New("usage: create-admin <dni> <full name>")
	}

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer closeDatabase(database)

	users := db.NewUserRepository(database)
	exists, err := users.ExistsByDNI(dni)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("an account with dni %s already exists", dni)
	}

	password, err := security.TempPassword(tempPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		DNI:                 dni,
		FullName:            fullName,
		PasswordHash:        string(hash),
		Role:                models.RoleAdmin,
		ActivityType:        models.ActivityMixed,
		OnboardingCompleted: true,
		MustChangePassword:  true,
	}
	if err := users.Create(&admin); err != nil {
		return err
	}

	fmt.Printf("admin %s created\ntemporary password: %s\n", dni, password)
	return nil
}

// ResetPassword issues a new temporary password for any account and forces a
// change on next login.
func ResetPassword(databasePath string, dni string) error {
	dni = strings.TrimSpace(dni)
	if dni == "" {
		return errors.New("usage: reset-password <dni>")
	}

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer closeDatabase(database)

	users := db.NewUserRepository(database)
	user, err := users.FindByDNI(dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no account with dni %s", dni)
		}
		return err
	}

	password, err := security.TempPassword(tempPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := users.UpdatePassword(user.ID, string(hash), true); err != nil {
		return err
	}

	fmt.Printf("password for %s reset\ntemporary password: %s\n", dni, password)
	return nil
}

func closeDatabase(database *gorm.DB) {
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
