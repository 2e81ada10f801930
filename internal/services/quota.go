package services

import (
	"time"

	"github.com/nicolasreynoso/forja/internal/models"
)

const (
	QuotaStatusCurrent        = "current"
	QuotaStatusAboutToExpire  = "about_to_expire"
	QuotaStatusExpired        = "expired"
	QuotaStatusPendingPayment = "pending_payment"
)

const quotaValidityDays = 30
const quotaWarningDays = 7

// QuotaWindow is the derived financial standing of an account: when the
// current quota runs out and how that reads as a status badge.
type QuotaWindow struct {
	ExpirationDate time.Time `json:"expiration_date"`
	DaysRemaining  int       `json:"days_remaining"`
	Status         string    `json:"status"`
}

// HasPaymentForMonth reports whether some payment covers the given calendar
// month with a settled status. Months are 0-indexed (January = 0).
func HasPaymentForMonth(payments []models.Payment, year int, month int) bool {
	for _, payment := range payments {
		if payment.Status != models.PaymentStatusPaid {
			continue
		}
		if payment.PaidAt.Year() == year && int(payment.PaidAt.Month())-1 == month {
			return true
		}
	}
	return false
}

// IsUpToDate walks every calendar month from (startYear, startMonth) through
// (currentYear, currentMonth) inclusive and fails on the first month without
// a settled payment. Months are 0-indexed and wrap 11 -> 0 across years.
func IsUpToDate(startYear int, startMonth int, currentYear int, currentMonth int, payments []models.Payment) bool {
	year := startYear
	month := startMonth

	for year < currentYear || (year == currentYear && month <= currentMonth) {
		if !HasPaymentForMonth(payments, year, month) {
			return false
		}
		month++
		if month > 11 {
			month = 0
			year++
		}
	}
	return true
}

// BuildQuotaWindow derives the expiration window from the account creation
// date and the most recent settled payment: expiration is the later of the
// two plus 30 days, and remaining days are counted at calendar-day
// granularity, so two instants on the same date always yield zero.
func BuildQuotaWindow(accountCreatedAt time.Time, payments []models.Payment, now time.Time) QuotaWindow {
	baseDate := accountCreatedAt
	for _, payment := range payments {
		if payment.Status != models.PaymentStatusPaid {
			continue
		}
		if payment.PaidAt.After(baseDate) {
			baseDate = payment.PaidAt
		}
	}

	expiration := baseDate.AddDate(0, 0, quotaValidityDays)
	daysRemaining := calendarDaysBetween(now, expiration)

	window := QuotaWindow{
		ExpirationDate: expiration,
		DaysRemaining:  daysRemaining,
		Status:         QuotaStatusCurrent,
	}

	switch {
	case daysRemaining < 0:
		window.Status = QuotaStatusExpired
		if hasPendingPayment(payments) {
			window.Status = QuotaStatusPendingPayment
		}
	case daysRemaining <= quotaWarningDays:
		window.Status = QuotaStatusAboutToExpire
	}

	return window
}

func hasPendingPayment(payments []models.Payment) bool {
	for _, payment := range payments {
		if payment.Status == models.PaymentStatusPending {
			return true
		}
	}
	return false
}

// calendarDaysBetween ignores time-of-day entirely: the count is between the
// two calendar dates, evaluated in each instant's own location.
func calendarDaysBetween(from time.Time, to time.Time) int {
	fromDay := dateOnly(from)
	toDay := dateOnly(to)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
