package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/services"
)

type bookingSlotInput struct {
	Date string `json:"date" form:"date"`
	Hour int    `json:"hour" form:"hour"`
}

type adminBookingInput struct {
	UserID uint   `json:"user_id" form:"user_id"`
	Date   string `json:"date" form:"date"`
	Hour   int    `json:"hour" form:"hour"`
}

type pilatesSettingsInput struct {
	MorningStartHour   int `json:"morning_start_hour" form:"morning_start_hour"`
	MorningEndHour     int `json:"morning_end_hour" form:"morning_end_hour"`
	AfternoonStartHour int `json:"afternoon_start_hour" form:"afternoon_start_hour"`
	AfternoonEndHour   int `json:"afternoon_end_hour" form:"afternoon_end_hour"`
	MaxCapacity        int `json:"max_capacity" form:"max_capacity"`
}

type weekSlot struct {
	Date       string `json:"date"`
	Hour       int    `json:"hour"`
	Occupancy  int    `json:"occupancy"`
	Capacity   int    `json:"capacity"`
	Full       bool   `json:"full"`
	BookedByMe bool   `json:"booked_by_me"`
}

// PilatesAccessRequired keeps gym-only students out of the scheduling
// surface. Admins pass through so they can manage the grid.
func (handler *Handler) PilatesAccessRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	if user.Role != models.RoleAdmin && !services.CanAccessPilates(user.ActivityType) {
		return apiError(c, fiber.StatusForbidden, "pilates access requires a pilates or mixed plan")
	}
	return c.Next()
}

func (handler *Handler) GetPilatesSettings(c *fiber.Ctx) error {
	settings, err := handler.repos.Settings.LoadPilatesSettings()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{
		"settings":       settings,
		"bookable_hours": services.BookableHours(settings),
	})
}

func (handler *Handler) UpdatePilatesSettings(c *fiber.Ctx) error {
	input := pilatesSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := handler.repos.Settings.LoadPilatesSettings()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	settings.MorningStartHour = input.MorningStartHour
	settings.MorningEndHour = input.MorningEndHour
	settings.AfternoonStartHour = input.AfternoonStartHour
	settings.AfternoonEndHour = input.AfternoonEndHour
	settings.MaxCapacity = input.MaxCapacity

	if err := services.ValidatePilatesSettings(settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := handler.repos.Settings.SavePilatesSettings(&settings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"settings": settings})
}

// WeekSchedule renders the seven-day grid starting from the Monday of the
// requested date. Only occupancy is exposed here; names stay on the admin
// endpoint.
func (handler *Handler) WeekSchedule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	day, err := parseDayQuery(c, "start", handler.now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	weekStart, _ := services.WeekBounds(day)

	settings, bookings, err := handler.bookings.WeekSchedule(weekStart)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}

	hours := services.BookableHours(settings)
	slots := make([]weekSlot, 0, 7*len(hours))
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		date := services.DateKey(weekStart.AddDate(0, 0, dayOffset))
		for _, hour := range hours {
			slots = append(slots, weekSlot{
				Date:       date,
				Hour:       hour,
				Occupancy:  services.SlotOccupancy(bookings, date, hour),
				Capacity:   settings.MaxCapacity,
				Full:       services.IsSlotFull(bookings, date, hour, settings.MaxCapacity),
				BookedByMe: services.IsUserBooked(bookings, user.ID, date, hour),
			})
		}
	}

	return c.JSON(fiber.Map{
		"week_start": services.DateKey(weekStart),
		"slots":      slots,
	})
}

// AdminWeekBookings lists the raw seat assignments for a week with student
// names resolved, for the class roster view.
func (handler *Handler) AdminWeekBookings(c *fiber.Ctx) error {
	day, err := parseDayQuery(c, "start", handler.now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	weekStart, _ := services.WeekBounds(day)

	fromDate := services.DateKey(weekStart)
	toDate := services.DateKey(weekStart.AddDate(0, 0, 6))
	bookings, err := handler.repos.Bookings.ListByDateRange(fromDate, toDate)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}

	students, err := handler.repos.Users.ListStudents()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	namesByID := make(map[uint]string, len(students))
	for _, student := range students {
		namesByID[student.ID] = student.FullName
	}

	type rosterEntry struct {
		models.PilatesBooking
		StudentName string `json:"student_name"`
	}
	roster := make([]rosterEntry, 0, len(bookings))
	for _, booking := range bookings {
		roster = append(roster, rosterEntry{PilatesBooking: booking, StudentName: namesByID[booking.UserID]})
	}

	return c.JSON(fiber.Map{
		"week_start": fromDate,
		"bookings":   roster,
	})
}

func (handler *Handler) BookSlot(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := bookingSlotInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Date) == "" {
		return apiError(c, fiber.StatusBadRequest, "date is required")
	}

	if err := handler.bookings.BookSlot(user.ID, input.Date, input.Hour, handler.now()); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CancelSlot(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := bookingSlotInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := handler.bookings.CancelSlot(user.ID, input.Date, input.Hour, handler.now()); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) MyUpcomingBookings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	bookings, err := handler.bookings.UpcomingForUser(user.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"bookings": bookings})
}

// AdminBookSlot seats a specific student; the same capacity and band rules
// apply, only the cancellation cutoff is waived for admins.
func (handler *Handler) AdminBookSlot(c *fiber.Ctx) error {
	input := adminBookingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "user_id is required")
	}
	target, err := handler.repos.Users.FindByID(input.UserID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}
	if !services.CanAccessPilates(target.ActivityType) {
		return apiError(c, fiber.StatusConflict, "student's plan does not include pilates")
	}

	if err := handler.bookings.BookSlot(target.ID, input.Date, input.Hour, handler.now()); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AdminCancelSlot(c *fiber.Ctx) error {
	input := adminBookingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "user_id is required")
	}

	if err := handler.bookings.AdminCancelSlot(input.UserID, input.Date, input.Hour); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
