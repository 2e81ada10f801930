package api

import (
	"net/http"
	"testing"

	"github.com/nicolasreynoso/forja/internal/models"
)

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, true)

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"dni":      "30111222",
		"password": "wrong-password",
	}, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestLoginUnknownDNIReturnsSameError(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]any{
		"dni":      "99999999",
		"password": "whatever",
	}, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestMeRequiresAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/me", nil, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestLoginSetsCookieAndMeReturnsAccount(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityPilates, true)

	cookie := login(t, app, user.DNI)

	response := doJSON(t, app, http.MethodGet, "/api/me", nil, cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	body := struct {
		User          models.User `json:"user"`
		PilatesAccess bool        `json:"pilates_access"`
		Quota         struct {
			Status string `json:"status"`
		} `json:"quota"`
	}{}
	decodeBody(t, response, &body)

	if body.User.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, body.User.ID)
	}
	if !body.PilatesAccess {
		t.Fatal("expected pilates access for pilates plan")
	}
	if body.Quota.Status == "" {
		t.Fatal("expected quota status for a student")
	}
}

func TestChangePasswordClearsForcedChangeFlag(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, true)
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).Update("must_change_password", true).Error; err != nil {
		t.Fatalf("flag account: %v", err)
	}

	cookie := login(t, app, user.DNI)

	weak := doJSON(t, app, http.MethodPost, "/api/auth/change-password", map[string]any{
		"current_password": user.DNI,
		"new_password":     "short",
		"confirm_password": "short",
	}, cookie)
	weak.Body.Close()
	if weak.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for weak password, got %d", weak.StatusCode)
	}

	response := doJSON(t, app, http.MethodPost, "/api/auth/change-password", map[string]any{
		"current_password": user.DNI,
		"new_password":     "NuevaClave1",
		"confirm_password": "NuevaClave1",
	}, cookie)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	reloaded := models.User{}
	if err := database.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.MustChangePassword {
		t.Fatal("expected must_change_password to be cleared")
	}
}
