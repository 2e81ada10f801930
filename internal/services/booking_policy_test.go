package services

import (
	"errors"
	"testing"
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
)

func classBookings() []models.PilatesBooking {
	return []models.PilatesBooking{
		{UserID: 1, Date: "2026-01-25", Hour: 10},
		{UserID: 2, Date: "2026-01-25", Hour: 10},
		{UserID: 3, Date: "2026-01-25", Hour: 10},
		{UserID: 4, Date: "2026-01-25", Hour: 10},
		{UserID: 1, Date: "2026-01-25", Hour: 11},
	}
}

func TestSlotOccupancy(t *testing.T) {
	t.Parallel()

	bookings := classBookings()
	if got := SlotOccupancy(bookings, "2026-01-25", 10); got != 4 {
		t.Fatalf("expected occupancy 4, got %d", got)
	}
	if got := SlotOccupancy(bookings, "2026-01-25", 11); got != 1 {
		t.Fatalf("expected occupancy 1, got %d", got)
	}
	if got := SlotOccupancy(bookings, "2026-01-25", 12); got != 0 {
		t.Fatalf("expected empty slot, got %d", got)
	}
}

func TestIsSlotFull(t *testing.T) {
	t.Parallel()

	bookings := classBookings()
	if !IsSlotFull(bookings, "2026-01-25", 10, 4) {
		t.Fatal("expected slot with 4 seats taken to be full at capacity 4")
	}
	if IsSlotFull(bookings, "2026-01-25", 11, 4) {
		t.Fatal("expected slot with one seat taken not to be full")
	}
	if IsSlotFull(bookings, "2026-01-25", 10, 5) {
		t.Fatal("expected 4 seats not to fill a capacity of 5")
	}
}

func TestIsUserBooked(t *testing.T) {
	t.Parallel()

	bookings := classBookings()
	if !IsUserBooked(bookings, 1, "2026-01-25", 10) {
		t.Fatal("expected user 1 to hold the 10:00 slot")
	}
	if IsUserBooked(bookings, 5, "2026-01-25", 10) {
		t.Fatal("expected user 5 not to hold the 10:00 slot")
	}
}

func TestCanBook(t *testing.T) {
	t.Parallel()

	bookings := classBookings()
	now := mustParseDay(t, "2026-01-20")

	cases := []struct {
		name    string
		userID  uint
		date    string
		hour    int
		wantErr error
	}{
		{name: "full slot rejected", userID: 5, date: "2026-01-25", hour: 10, wantErr: ErrSlotFull},
		{name: "double booking rejected", userID: 1, date: "2026-01-25", hour: 11, wantErr: ErrAlreadyBooked},
		{name: "open seat accepted", userID: 5, date: "2026-01-25", hour: 11},
		{name: "empty slot accepted", userID: 1, date: "2026-01-25", hour: 12},
		{name: "elapsed slot rejected", userID: 5, date: "2026-01-10", hour: 9, wantErr: ErrSlotInPast},
		{name: "malformed date rejected", userID: 5, date: "25/01/2026", hour: 9, wantErr: ErrInvalidInput},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			err := CanBook(bookings, testCase.userID, testCase.date, testCase.hour, 4, now)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected error %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestSlotStartUsesFixedOffset(t *testing.T) {
	t.Parallel()

	slotStart, err := SlotStart("2026-01-25", 10)
	if err != nil {
		t.Fatalf("slot start failed: %v", err)
	}

	// 10:00 at UTC-3 is 13:00 UTC regardless of the server timezone.
	if got := slotStart.UTC().Format("2006-01-02T15:04"); got != "2026-01-25T13:00" {
		t.Fatalf("expected 2026-01-25T13:00 UTC, got %s", got)
	}
}

func TestCanCancelCutoff(t *testing.T) {
	t.Parallel()

	// Class at 2026-01-25 10:00 UTC-3 == 13:00 UTC.
	classDate := "2026-01-25"

	cases := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{name: "three hours ahead allowed", now: time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)},
		{name: "exactly 121 minutes ahead allowed", now: time.Date(2026, 1, 25, 10, 59, 0, 0, time.UTC)},
		{name: "exactly 120 minutes ahead rejected", now: time.Date(2026, 1, 25, 11, 0, 0, 0, time.UTC), wantErr: ErrCancellationWindowExpired},
		{name: "one hour ahead rejected", now: time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC), wantErr: ErrCancellationWindowExpired},
		{name: "class already started rejected", now: time.Date(2026, 1, 25, 14, 0, 0, 0, time.UTC), wantErr: ErrCancellationWindowExpired},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			err := CanCancel(testCase.now, classDate, 10)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected error %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestIsHourBookableHalfOpenBands(t *testing.T) {
	t.Parallel()

	settings := models.PilatesSettings{
		MorningStartHour:   7,
		MorningEndHour:     12,
		AfternoonStartHour: 16,
		AfternoonEndHour:   21,
	}

	wantBookable := map[int]bool{
		6: false, 7: true, 11: true, 12: false,
		13: false, 14: false, 15: false,
		16: true, 20: true, 21: false,
	}
	for hour, want := range wantBookable {
		if got := IsHourBookable(settings, hour); got != want {
			t.Fatalf("hour %d: expected bookable=%v, got %v", hour, want, got)
		}
	}
}

func TestValidatePilatesSettings(t *testing.T) {
	t.Parallel()

	valid := models.DefaultPilatesSettings()
	if err := ValidatePilatesSettings(valid); err != nil {
		t.Fatalf("expected default settings to validate, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*models.PilatesSettings)
	}{
		{name: "inverted morning band", mutate: func(s *models.PilatesSettings) { s.MorningEndHour = s.MorningStartHour }},
		{name: "overlapping bands", mutate: func(s *models.PilatesSettings) { s.AfternoonStartHour = s.MorningEndHour - 1 }},
		{name: "inverted afternoon band", mutate: func(s *models.PilatesSettings) { s.AfternoonEndHour = s.AfternoonStartHour }},
		{name: "zero capacity", mutate: func(s *models.PilatesSettings) { s.MaxCapacity = 0 }},
		{name: "band past midnight", mutate: func(s *models.PilatesSettings) { s.AfternoonEndHour = 25 }},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			settings := models.DefaultPilatesSettings()
			testCase.mutate(&settings)
			if err := ValidatePilatesSettings(settings); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestBookableHours(t *testing.T) {
	t.Parallel()

	hours := BookableHours(models.DefaultPilatesSettings())
	want := []int{7, 8, 9, 10, 11, 16, 17, 18, 19, 20}
	if len(hours) != len(want) {
		t.Fatalf("expected %d hours, got %d (%v)", len(want), len(hours), hours)
	}
	for index, hour := range want {
		if hours[index] != hour {
			t.Fatalf("expected hour %d at index %d, got %d", hour, index, hours[index])
		}
	}
}
