package api

import (
	"net/http"
	"testing"

	"github.com/nicolasreynoso/forja/internal/models"
)

func onboardingPayload() map[string]any {
	return map[string]any{
		"phone":                "1155667788",
		"address":              "Av. Siempre Viva 742",
		"emergency_phone":      "1144556677",
		"date_of_birth":        "1995-04-12",
		"activity_type":        "mixed",
		"weight":               68.5,
		"height":               172,
		"has_allergies":        true,
		"allergies_details":    "penicilina",
		"goals":                "mejorar postura",
		"declaration_accepted": true,
	}
}

func TestStudentSurfaceBlockedUntilOnboarding(t *testing.T) {
	app, database := newTestApp(t)
	student := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, false)
	cookie := login(t, app, student.DNI)

	response := doJSON(t, app, http.MethodGet, "/api/routines", nil, cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 before onboarding, got %d", response.StatusCode)
	}
}

func TestOnboardingRequiresSignedDeclaration(t *testing.T) {
	app, database := newTestApp(t)
	student := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, false)
	cookie := login(t, app, student.DNI)

	payload := onboardingPayload()
	payload["declaration_accepted"] = false

	response := doJSON(t, app, http.MethodPost, "/api/onboarding", payload, cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestOnboardingUnlocksStudentSurface(t *testing.T) {
	app, database := newTestApp(t)
	student := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, false)
	cookie := login(t, app, student.DNI)

	response := doJSON(t, app, http.MethodPost, "/api/onboarding", onboardingPayload(), cookie)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	reloaded := models.User{}
	if err := database.First(&reloaded, student.ID).Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if !reloaded.OnboardingCompleted {
		t.Fatal("expected onboarding flag set")
	}
	if reloaded.ActivityType != models.ActivityMixed {
		t.Fatalf("expected activity from questionnaire, got %q", reloaded.ActivityType)
	}

	profile := models.HealthProfile{}
	if err := database.Where("user_id = ?", student.ID).First(&profile).Error; err != nil {
		t.Fatalf("load health profile: %v", err)
	}
	if !profile.HasAllergies || profile.AllergiesDetails == "" {
		t.Fatalf("expected allergy answers persisted, got %+v", profile)
	}

	routines := doJSON(t, app, http.MethodGet, "/api/routines", nil, cookie)
	defer routines.Body.Close()
	if routines.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 after onboarding, got %d", routines.StatusCode)
	}
}

func TestOnboardingCannotBeResubmitted(t *testing.T) {
	app, database := newTestApp(t)
	student := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, true)
	cookie := login(t, app, student.DNI)

	response := doJSON(t, app, http.MethodPost, "/api/onboarding", onboardingPayload(), cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
}
