package services

import (
	"errors"
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
	"gorm.io/gorm"
)

type BookingStore interface {
	ListByDateRange(fromDate string, toDate string) ([]models.PilatesBooking, error)
	ListByUser(userID uint, fromDate string) ([]models.PilatesBooking, error)
	InsertIfCapacity(booking *models.PilatesBooking, maxCapacity int) (bool, error)
	Delete(userID uint, date string, hour int) (int64, error)
}

type PilatesSettingsStore interface {
	LoadPilatesSettings() (models.PilatesSettings, error)
}

// BookingService applies the booking rules on top of the persisted slot
// state. Capacity re-check and insert run in one transaction at the store,
// so the read-then-write here is not a race under concurrent requests.
type BookingService struct {
	bookings BookingStore
	settings PilatesSettingsStore
}

func NewBookingService(bookings BookingStore, settings PilatesSettingsStore) *BookingService {
	return &BookingService{bookings: bookings, settings: settings}
}

// BookSlot takes a seat for a student. Admin bookings on behalf of a student
// go through the same path with skipPastCheck=false; the admin override only
// applies to cancellation.
func (service *BookingService) BookSlot(userID uint, date string, hour int, now time.Time) error {
	settings, err := service.settings.LoadPilatesSettings()
	if err != nil {
		return err
	}

	if !IsHourBookable(settings, hour) {
		return ErrSlotNotBookable
	}

	slotStart, err := SlotStart(date, hour)
	if err != nil {
		return ErrInvalidInput
	}
	if slotStart.Before(now) {
		return ErrSlotInPast
	}

	booking := models.PilatesBooking{UserID: userID, Date: date, Hour: hour}
	inserted, err := service.bookings.InsertIfCapacity(&booking, settings.MaxCapacity)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyBooked
		}
		return err
	}
	if !inserted {
		return ErrSlotFull
	}
	return nil
}

// CancelSlot is the student self-service path, gated by the 2-hour cutoff.
func (service *BookingService) CancelSlot(userID uint, date string, hour int, now time.Time) error {
	if err := CanCancel(now, date, hour); err != nil {
		return err
	}
	return service.deleteBooking(userID, date, hour)
}

// AdminCancelSlot removes a seat without the cutoff; the caller must have
// verified the admin role already.
func (service *BookingService) AdminCancelSlot(targetUserID uint, date string, hour int) error {
	if _, err := SlotStart(date, hour); err != nil {
		return ErrInvalidInput
	}
	return service.deleteBooking(targetUserID, date, hour)
}

func (service *BookingService) deleteBooking(userID uint, date string, hour int) error {
	deleted, err := service.bookings.Delete(userID, date, hour)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// WeekSchedule loads the bookings and bookable hours for a calendar week so
// the scheduling grid can be rendered in one round trip.
func (service *BookingService) WeekSchedule(weekStart time.Time) (models.PilatesSettings, []models.PilatesBooking, error) {
	settings, err := service.settings.LoadPilatesSettings()
	if err != nil {
		return models.PilatesSettings{}, nil, err
	}

	fromDate := weekStart.Format(slotDateLayout)
	toDate := weekStart.AddDate(0, 0, 6).Format(slotDateLayout)
	bookings, err := service.bookings.ListByDateRange(fromDate, toDate)
	if err != nil {
		return models.PilatesSettings{}, nil, err
	}
	return settings, bookings, nil
}

func (service *BookingService) UpcomingForUser(userID uint, now time.Time) ([]models.PilatesBooking, error) {
	return service.bookings.ListByUser(userID, now.In(facilityZone).Format(slotDateLayout))
}
