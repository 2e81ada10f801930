package services

import "time"

// WeekBounds returns the Monday and Sunday of the week containing the given
// day. The scheduling grid is always rendered Monday-first.
func WeekBounds(day time.Time) (time.Time, time.Time) {
	date := dateOnly(day)
	offset := (int(date.Weekday()) + 6) % 7
	monday := date.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// MonthBounds returns the first instant of the month containing the given
// day and the first instant of the next month, a half-open reporting window.
func MonthBounds(day time.Time, location *time.Location) (time.Time, time.Time) {
	if location == nil {
		location = time.UTC
	}
	localized := day.In(location)
	start := time.Date(localized.Year(), localized.Month(), 1, 0, 0, 0, 0, location)
	return start, start.AddDate(0, 1, 0)
}

// DateKey renders a day in the format slot dates are stored under.
func DateKey(day time.Time) string {
	return day.Format(slotDateLayout)
}
