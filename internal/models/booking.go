package models

import "time"

const (
	DefaultMorningStartHour   = 7
	DefaultMorningEndHour     = 12
	DefaultAfternoonStartHour = 16
	DefaultAfternoonEndHour   = 21
	DefaultSlotCapacity       = 4
)

// PilatesBooking holds one seat in a class slot. Date is stored as a plain
// YYYY-MM-DD string so slot identity never shifts with the server timezone.
type PilatesBooking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_booking_slot" json:"user_id"`
	Date      string    `gorm:"type:text;not null;uniqueIndex:uidx_booking_slot;index:idx_booking_date" json:"date"`
	Hour      int       `gorm:"not null;uniqueIndex:uidx_booking_slot" json:"hour"`
	CreatedAt time.Time `json:"created_at"`
}

// PilatesSettings is a singleton row read on every scheduling request so
// admin edits are visible immediately.
type PilatesSettings struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	MorningStartHour   int       `gorm:"not null" json:"morning_start_hour"`
	MorningEndHour     int       `gorm:"not null" json:"morning_end_hour"`
	AfternoonStartHour int       `gorm:"not null" json:"afternoon_start_hour"`
	AfternoonEndHour   int       `gorm:"not null" json:"afternoon_end_hour"`
	MaxCapacity        int       `gorm:"not null" json:"max_capacity"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func DefaultPilatesSettings() PilatesSettings {
	return PilatesSettings{
		MorningStartHour:   DefaultMorningStartHour,
		MorningEndHour:     DefaultMorningEndHour,
		AfternoonStartHour: DefaultAfternoonStartHour,
		AfternoonEndHour:   DefaultAfternoonEndHour,
		MaxCapacity:        DefaultSlotCapacity,
	}
}
