package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nicolasreynoso/forja/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the service sentinels onto HTTP statuses; any
// unrecognized error is reported as a persistence failure.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSlotFull),
		errors.Is(err, services.ErrAlreadyBooked),
		errors.Is(err, services.ErrSlotInPast),
		errors.Is(err, services.ErrSlotNotBookable),
		errors.Is(err, services.ErrCancellationWindowExpired):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrBookingNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

// parseDayQuery reads a YYYY-MM-DD query parameter, defaulting to today in
// the handler's location when absent.
func parseDayQuery(c *fiber.Ctx, name string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return day, nil
}
