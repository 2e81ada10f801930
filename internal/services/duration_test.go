package services

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "00:00:00"},
		{seconds: 90, want: "00:01:30"},
		{seconds: 3661, want: "01:01:01"},
		{seconds: 7200, want: "02:00:00"},
		{seconds: 359999, want: "99:59:59"},
		{seconds: -5, want: "00:00:00"},
	}

	for _, testCase := range cases {
		if got := FormatDuration(testCase.seconds); got != testCase.want {
			t.Fatalf("FormatDuration(%d): expected %s, got %s", testCase.seconds, testCase.want, got)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	t.Parallel()

	for _, seconds := range []int{0, 1, 59, 60, 61, 90, 3599, 3600, 3661, 86399, 360000} {
		parsed, err := ParseClock(FormatDuration(seconds))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", seconds, err)
		}
		if parsed != seconds {
			t.Fatalf("round trip of %d returned %d", seconds, parsed)
		}
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "90", "1:2", "00:61:00", "00:00:75", "aa:bb:cc"} {
		if _, err := ParseClock(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected %q to be rejected, got %v", raw, err)
		}
	}
}

func TestElapsedSecondsRecomputesFromStart(t *testing.T) {
	t.Parallel()

	startedAt := time.Date(2026, 1, 25, 10, 0, 0, 0, time.UTC)
	now := startedAt.Add(1*time.Hour + 1*time.Minute + 1*time.Second)

	if got := ElapsedSeconds(startedAt, now); got != 3661 {
		t.Fatalf("expected 3661 elapsed seconds, got %d", got)
	}
	if got := ElapsedSeconds(now, startedAt); got != 0 {
		t.Fatalf("expected clock skew to clamp at 0, got %d", got)
	}
}
