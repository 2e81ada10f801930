package api

import (
	"net/http"
	"testing"

	"gorm.io/gorm"

	"github.com/nicolasreynoso/forja/internal/models"
)

func seedRoutine(t *testing.T, database *gorm.DB, name string, activity string, assignedTo *uint) models.Routine {
	t.Helper()
	routine := models.Routine{Name: name, ActivityType: activity, AssignedTo: assignedTo, CreatedBy: 1}
	if err := database.Create(&routine).Error; err != nil {
		t.Fatalf("seed routine: %v", err)
	}
	return routine
}

func TestStudentRoutineListRespectsActivityAndAssignment(t *testing.T) {
	app, database := newTestApp(t)
	gymStudent := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, true)
	otherStudent := createTestUser(t, database, "30111223", models.RoleStudent, models.ActivityGym, true)

	seedRoutine(t, database, "Fuerza base", models.ActivityGym, nil)
	seedRoutine(t, database, "Pilates reformer", models.ActivityPilates, nil)
	seedRoutine(t, database, "Plan mixto", models.ActivityMixed, nil)
	seedRoutine(t, database, "Plan ajeno", models.ActivityGym, &otherStudent.ID)

	cookie := login(t, app, gymStudent.DNI)
	response := doJSON(t, app, http.MethodGet, "/api/routines", nil, cookie)
	defer response.Body.Close()

	body := struct {
		Routines []models.Routine `json:"routines"`
	}{}
	decodeBody(t, response, &body)

	names := map[string]bool{}
	for _, routine := range body.Routines {
		names[routine.Name] = true
	}

	if !names["Fuerza base"] || !names["Plan mixto"] {
		t.Fatalf("expected gym and mixed routines visible, got %v", names)
	}
	if names["Pilates reformer"] {
		t.Fatal("pilates routine must be hidden from a gym student")
	}
	if names["Plan ajeno"] {
		t.Fatal("routine assigned to another student must be hidden")
	}
}

func TestStudentCannotFetchForeignRoutineDetail(t *testing.T) {
	app, database := newTestApp(t)
	student := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, true)
	otherStudent := createTestUser(t, database, "30111223", models.RoleStudent, models.ActivityGym, true)
	foreign := seedRoutine(t, database, "Plan ajeno", models.ActivityGym, &otherStudent.ID)

	cookie := login(t, app, student.DNI)
	response := doJSON(t, app, http.MethodGet, "/api/routines/"+itoa(foreign.ID), nil, cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestAdminCreatesRoutineWithItemsAndAssignsIt(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "20111222", models.RoleAdmin, models.ActivityMixed, true)
	student := createTestUser(t, database, "30111222", models.RoleStudent, models.ActivityGym, true)
	cookie := login(t, app, admin.DNI)

	exercise := doJSON(t, app, http.MethodPost, "/api/admin/exercises", map[string]any{
		"name":         "Sentadilla",
		"muscle_group": "piernas",
	}, cookie)
	exerciseBody := struct {
		Exercise models.Exercise `json:"exercise"`
	}{}
	decodeBody(t, exercise, &exerciseBody)
	exercise.Body.Close()

	created := doJSON(t, app, http.MethodPost, "/api/admin/routines", map[string]any{
		"name":          "Adaptacion",
		"activity_type": "gym",
		"items": []map[string]any{
			{"exercise_id": exerciseBody.Exercise.ID, "day_number": 1, "sets": 3, "reps": "10-12"},
			{"exercise_id": exerciseBody.Exercise.ID, "day_number": 2, "sets": 4, "reps": "8"},
		},
	}, cookie)
	defer created.Body.Close()
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", created.StatusCode)
	}

	createdBody := struct {
		Routine models.Routine `json:"routine"`
	}{}
	decodeBody(t, created, &createdBody)

	assigned := doJSON(t, app, http.MethodPost, "/api/admin/routines/"+itoa(createdBody.Routine.ID)+"/assign", map[string]any{
		"user_id": student.ID,
	}, cookie)
	assigned.Body.Close()
	if assigned.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", assigned.StatusCode)
	}

	studentCookie := login(t, app, student.DNI)
	detail := doJSON(t, app, http.MethodGet, "/api/routines/"+itoa(createdBody.Routine.ID), nil, studentCookie)
	defer detail.Body.Close()
	if detail.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", detail.StatusCode)
	}

	detailBody := struct {
		Routine models.Routine `json:"routine"`
	}{}
	decodeBody(t, detail, &detailBody)
	if len(detailBody.Routine.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(detailBody.Routine.Items))
	}
}

func TestRoutineCreationRequiresItems(t *testing.T) {
	app, database := newTestApp(t)
	admin := createTestUser(t, database, "20111222", models.RoleAdmin, models.ActivityMixed, true)
	cookie := login(t, app, admin.DNI)

	response := doJSON(t, app, http.MethodPost, "/api/admin/routines", map[string]any{
		"name":          "Vacia",
		"activity_type": "gym",
	}, cookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}
