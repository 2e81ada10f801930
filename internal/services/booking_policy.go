package services

import (
	"fmt"
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
)

// The studio operates on Argentina time. Slot instants are always computed
// against this fixed offset so a mis-set server timezone cannot shift class
// times.
var facilityZone = time.FixedZone("UTC-3", -3*60*60)

const cancellationCutoffMinutes = 120

const slotDateLayout = "2006-01-02"

// SlotStart resolves a (date, hour) pair to the exact class start instant in
// the facility's fixed UTC-3 offset.
func SlotStart(date string, hour int) (time.Time, error) {
	day, err := time.ParseInLocation(slotDateLayout, date, facilityZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot date %q: %w", date, err)
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("slot hour %d out of range", hour)
	}
	return day.Add(time.Duration(hour) * time.Hour), nil
}

func SlotOccupancy(bookings []models.PilatesBooking, date string, hour int) int {
	count := 0
	for _, booking := range bookings {
		if booking.Date == date && booking.Hour == hour {
			count++
		}
	}
	return count
}

func IsSlotFull(bookings []models.PilatesBooking, date string, hour int, maxCapacity int) bool {
	return SlotOccupancy(bookings, date, hour) >= maxCapacity
}

func IsUserBooked(bookings []models.PilatesBooking, userID uint, date string, hour int) bool {
	for _, booking := range bookings {
		if booking.UserID == userID && booking.Date == date && booking.Hour == hour {
			return true
		}
	}
	return false
}

// CanBook checks a self-service booking attempt against the loaded slot
// state: capacity first, then double-booking, then elapsed slots.
func CanBook(bookings []models.PilatesBooking, userID uint, date string, hour int, maxCapacity int, now time.Time) error {
	if IsSlotFull(bookings, date, hour, maxCapacity) {
		return ErrSlotFull
	}
	if IsUserBooked(bookings, userID, date, hour) {
		return ErrAlreadyBooked
	}

	slotStart, err := SlotStart(date, hour)
	if err != nil {
		return ErrInvalidInput
	}
	if slotStart.Before(now) {
		return ErrSlotInPast
	}
	return nil
}

// CanCancel enforces the 2-hour cutoff: a student may cancel only while the
// class is still more than 120 minutes away. Admin-initiated cancellation
// does not pass through here.
func CanCancel(now time.Time, date string, hour int) error {
	slotStart, err := SlotStart(date, hour)
	if err != nil {
		return ErrInvalidInput
	}

	minutesUntilClass := slotStart.Sub(now).Minutes()
	if minutesUntilClass <= cancellationCutoffMinutes {
		return ErrCancellationWindowExpired
	}
	return nil
}

// IsHourBookable applies half-open [start, end) membership against both
// configured time bands.
func IsHourBookable(settings models.PilatesSettings, hour int) bool {
	inMorning := hour >= settings.MorningStartHour && hour < settings.MorningEndHour
	inAfternoon := hour >= settings.AfternoonStartHour && hour < settings.AfternoonEndHour
	return inMorning || inAfternoon
}

// ValidatePilatesSettings rejects band configurations that would overlap or
// invert: morning_start < morning_end <= afternoon_start < afternoon_end,
// with a positive capacity.
func ValidatePilatesSettings(settings models.PilatesSettings) error {
	if settings.MorningStartHour < 0 || settings.AfternoonEndHour > 24 {
		return ErrInvalidInput
	}
	if settings.MorningStartHour >= settings.MorningEndHour {
		return ErrInvalidInput
	}
	if settings.MorningEndHour > settings.AfternoonStartHour {
		return ErrInvalidInput
	}
	if settings.AfternoonStartHour >= settings.AfternoonEndHour {
		return ErrInvalidInput
	}
	if settings.MaxCapacity < 1 {
		return ErrInvalidInput
	}
	return nil
}

// BookableHours expands the configured bands into the concrete list of slot
// hours the scheduling grid offers.
func BookableHours(settings models.PilatesSettings) []int {
	hours := make([]int, 0, 12)
	for hour := settings.MorningStartHour; hour < settings.MorningEndHour; hour++ {
		hours = append(hours, hour)
	}
	for hour := settings.AfternoonStartHour; hour < settings.AfternoonEndHour; hour++ {
		hours = append(hours, hour)
	}
	return hours
}
