package services

import (
	"fmt"
	"time"
)

// FormatDuration renders a second count as HH:MM:SS. Negative input is
// clamped to zero, which is how a freshly started session timer reads.
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseClock reverses FormatDuration; both directions round-trip any
// non-negative second count.
func ParseClock(value string) (int, error) {
	var hours, minutes, seconds int
	if _, err := fmt.Sscanf(value, "%d:%d:%d", &hours, &minutes, &seconds); err != nil {
		return 0, fmt.Errorf("%w: malformed duration %q", ErrInvalidInput, value)
	}
	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: malformed duration %q", ErrInvalidInput, value)
	}
	return hours*3600 + minutes*60 + seconds, nil
}

// ElapsedSeconds recomputes a session's running time from its persisted
// start instant. Accumulating ticks instead would drift across reloads.
func ElapsedSeconds(startedAt time.Time, now time.Time) int {
	elapsed := int(now.Sub(startedAt).Seconds())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
