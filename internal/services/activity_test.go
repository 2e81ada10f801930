package services

import (
	"errors"
	"testing"

	"github.com/nicolasreynoso/forja/internal/models"
)

func sampleRoutines() []models.Routine {
	return []models.Routine{
		{ID: 1, Name: "Fuerza A", ActivityType: models.ActivityGym},
		{ID: 2, Name: "Pilates Reformer", ActivityType: models.ActivityPilates},
		{ID: 3, Name: "Funcional", ActivityType: models.ActivityMixed},
		{ID: 4, Name: "Fuerza B", ActivityType: models.ActivityGym},
	}
}

func routineIDs(routines []models.Routine) []uint {
	ids := make([]uint, 0, len(routines))
	for _, routine := range routines {
		ids = append(ids, routine.ID)
	}
	return ids
}

func TestFilterRoutinesByActivity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		activity string
		wantIDs  []uint
	}{
		{name: "gym sees gym and mixed", activity: models.ActivityGym, wantIDs: []uint{1, 3, 4}},
		{name: "pilates sees pilates and mixed", activity: models.ActivityPilates, wantIDs: []uint{2, 3}},
		{name: "mixed sees everything", activity: models.ActivityMixed, wantIDs: []uint{1, 2, 3, 4}},
		{name: "unknown activity sees only mixed", activity: "crossfit", wantIDs: []uint{3}},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			visible := FilterRoutinesByActivity(sampleRoutines(), testCase.activity)
			got := routineIDs(visible)
			if len(got) != len(testCase.wantIDs) {
				t.Fatalf("expected IDs %v, got %v", testCase.wantIDs, got)
			}
			for index, id := range testCase.wantIDs {
				if got[index] != id {
					t.Fatalf("expected IDs %v in input order, got %v", testCase.wantIDs, got)
				}
			}
		})
	}
}

func TestFilterRoutinesByActivityIsIdempotent(t *testing.T) {
	t.Parallel()

	once := FilterRoutinesByActivity(sampleRoutines(), models.ActivityGym)
	twice := FilterRoutinesByActivity(once, models.ActivityGym)
	if len(once) != len(twice) {
		t.Fatalf("expected idempotent filter, got %d then %d routines", len(once), len(twice))
	}
}

func TestFilterRoutinesByActivityExcludesUnknownTags(t *testing.T) {
	t.Parallel()

	routines := append(sampleRoutines(), models.Routine{ID: 9, ActivityType: "spinning"})
	for _, activity := range []string{models.ActivityGym, models.ActivityPilates, models.ActivityMixed} {
		for _, routine := range FilterRoutinesByActivity(routines, activity) {
			if routine.ID == 9 {
				t.Fatalf("expected unknown-tagged routine to stay hidden from %s users", activity)
			}
		}
	}
}

func TestCanAccessPilates(t *testing.T) {
	t.Parallel()

	if !CanAccessPilates(models.ActivityPilates) {
		t.Fatal("expected pilates user to access the pilates section")
	}
	if !CanAccessPilates(models.ActivityMixed) {
		t.Fatal("expected mixed user to access the pilates section")
	}
	if CanAccessPilates(models.ActivityGym) {
		t.Fatal("expected gym user not to access the pilates section")
	}
}

func TestParseActivity(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]string{
		"gym": models.ActivityGym, " Pilates ": models.ActivityPilates, "MIXED": models.ActivityMixed,
	} {
		got, err := ParseActivity(raw)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
		if got != want {
			t.Fatalf("expected %q to normalize to %s, got %s", raw, want, got)
		}
	}

	if _, err := ParseActivity("yoga"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown activity, got %v", err)
	}
}
