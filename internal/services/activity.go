package services

import (
	"fmt"
	"strings"

	"github.com/nicolasreynoso/forja/internal/models"
)

// ParseActivity narrows the open persisted string down to the closed
// three-value enumeration. Anything else is rejected at the boundary instead
// of being passed through silently.
func ParseActivity(raw string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case models.ActivityGym, models.ActivityPilates, models.ActivityMixed:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w: unknown activity %q", ErrInvalidInput, raw)
	}
}

// FilterRoutinesByActivity keeps the routines a user of the given activity
// may see: mixed users see everything tagged gym, pilates or mixed; everyone
// else sees their own activity plus mixed. Input order is preserved and
// unknown tags never match.
func FilterRoutinesByActivity(routines []models.Routine, userActivity string) []models.Routine {
	visible := make([]models.Routine, 0, len(routines))

	if userActivity == models.ActivityMixed {
		for _, routine := range routines {
			switch routine.ActivityType {
			case models.ActivityGym, models.ActivityPilates, models.ActivityMixed:
				visible = append(visible, routine)
			}
		}
		return visible
	}

	for _, routine := range routines {
		if routine.ActivityType == userActivity || routine.ActivityType == models.ActivityMixed {
			visible = append(visible, routine)
		}
	}
	return visible
}

func CanAccessPilates(userActivity string) bool {
	return userActivity == models.ActivityPilates || userActivity == models.ActivityMixed
}
