package services

import "errors"

// Booking and payment rule violations are expected, user-facing conditions.
// Handlers translate them into 4xx responses; anything else is treated as a
// persistence failure.
var (
	ErrSlotFull                  = errors.New("slot is full")
	ErrAlreadyBooked             = errors.New("already booked for this slot")
	ErrSlotInPast                = errors.New("slot is in the past")
	ErrSlotNotBookable           = errors.New("hour is outside bookable bands")
	ErrCancellationWindowExpired = errors.New("cancellation window expired, contact administration")
	ErrBookingNotFound           = errors.New("booking not found")
	ErrInvalidInput              = errors.New("invalid input")
)
