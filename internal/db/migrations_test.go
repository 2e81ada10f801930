package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/nicolasreynoso/forja/internal/models"
)

func openTestDatabase(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func TestOpenSQLiteAppliesSchemaOnCleanDatabase(t *testing.T) {
	database := openTestDatabase(t, filepath.Join(t.TempDir(), "forja.db"))

	expectedTables := []string{
		"users", "health_profiles", "payments", "activity_prices",
		"pilates_bookings", "pilates_settings", "exercises", "routines",
		"routine_items", "expenses", "teams", "players", "assessments",
		"benchmarks", "session_logs",
	}
	for _, table := range expectedTables {
		var count int64
		err := database.Raw(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&count).Error
		if err != nil {
			t.Fatalf("inspect table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestMigrationsSeedDefaultPilatesSettings(t *testing.T) {
	database := openTestDatabase(t, filepath.Join(t.TempDir(), "forja.db"))

	settings := models.PilatesSettings{}
	if err := database.First(&settings).Error; err != nil {
		t.Fatalf("load pilates settings: %v", err)
	}

	defaults := models.DefaultPilatesSettings()
	if settings.MorningStartHour != defaults.MorningStartHour ||
		settings.MorningEndHour != defaults.MorningEndHour ||
		settings.AfternoonStartHour != defaults.AfternoonStartHour ||
		settings.AfternoonEndHour != defaults.AfternoonEndHour ||
		settings.MaxCapacity != defaults.MaxCapacity {
		t.Fatalf("unexpected seeded settings: %+v", settings)
	}
}

func TestMigrationsAreIdempotentAcrossReopen(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "forja.db")

	first := openTestDatabase(t, databasePath)
	user := models.User{DNI: "30111222", FullName: "Persistente", PasswordHash: "x", Role: models.RoleStudent, ActivityType: models.ActivityGym}
	if err := first.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	second := openTestDatabase(t, databasePath)

	var users int64
	if err := second.Model(&models.User{}).Count(&users).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 1 {
		t.Fatalf("expected data to survive reopen, got %d users", users)
	}

	var settingsRows int64
	if err := second.Model(&models.PilatesSettings{}).Count(&settingsRows).Error; err != nil {
		t.Fatalf("count settings rows: %v", err)
	}
	if settingsRows != 1 {
		t.Fatalf("expected singleton settings row, got %d", settingsRows)
	}
}

func TestBookingSlotUniquenessEnforcedBySchema(t *testing.T) {
	database := openTestDatabase(t, filepath.Join(t.TempDir(), "forja.db"))

	booking := models.PilatesBooking{UserID: 1, Date: "2026-03-02", Hour: 10}
	if err := database.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	duplicate := models.PilatesBooking{UserID: 1, Date: "2026-03-02", Hour: 10}
	if err := database.Create(&duplicate).Error; err == nil {
		t.Fatal("expected unique index to reject duplicate seat")
	}
}
