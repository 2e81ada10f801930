package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/services"
)

// DashboardStats aggregates the admin landing numbers for the current month:
// headcount, cash flow and pending work.
func (handler *Handler) DashboardStats(c *fiber.Ctx) error {
	now := handler.now()
	monthStart, monthEnd := services.MonthBounds(now, handler.location)

	studentCount, err := handler.repos.Users.CountByRole(models.RoleStudent)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	newStudents, err := handler.repos.Users.CreatedSince(monthStart)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	pendingPayments, err := handler.repos.Payments.CountByStatus(models.PaymentStatusPending)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	income, err := handler.repos.Payments.SumPaidBetween(monthStart, monthEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	expenses, err := handler.repos.Expenses.SumBetween(monthStart, monthEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	todayBookings, err := handler.repos.Bookings.CountForDate(services.DateKey(now))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}

	return c.JSON(fiber.Map{
		"students":         studentCount,
		"new_students":     newStudents,
		"pending_payments": pendingPayments,
		"monthly_income":   income,
		"monthly_expenses": expenses,
		"monthly_balance":  income - expenses,
		"bookings_today":   todayBookings,
	})
}
