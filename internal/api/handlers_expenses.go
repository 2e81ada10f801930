package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/services"
)

type expenseInput struct {
	Category    string  `json:"category" form:"category"`
	Description string  `json:"description" form:"description"`
	Amount      float64 `json:"amount" form:"amount"`
	SpentAt     string  `json:"spent_at" form:"spent_at"`
}

// ListExpenses returns the expenses for the month of the given day (today
// when absent), plus the per-category totals.
func (handler *Handler) ListExpenses(c *fiber.Ctx) error {
	day, err := parseDayQuery(c, "month", handler.now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	from, to := services.MonthBounds(day, handler.location)

	expenses, err := handler.repos.Expenses.ListBetween(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	byCategory, err := handler.repos.Expenses.SumByCategoryBetween(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	total, err := handler.repos.Expenses.SumBetween(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}

	return c.JSON(fiber.Map{
		"expenses":    expenses,
		"by_category": byCategory,
		"total":       total,
	})
}

func (handler *Handler) CreateExpense(c *fiber.Ctx) error {
	input := expenseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return apiError(c, fiber.StatusBadRequest, "category is required")
	}
	if input.Amount <= 0 {
		return apiError(c, fiber.StatusBadRequest, "amount must be positive")
	}

	spentAt := handler.now()
	if raw := strings.TrimSpace(input.SpentAt); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid spent_at, expected YYYY-MM-DD")
		}
		spentAt = parsed
	}

	expense := models.Expense{
		Category:    category,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		SpentAt:     spentAt,
	}
	if err := handler.repos.Expenses.Create(&expense); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"expense": expense})
}

func (handler *Handler) DeleteExpense(c *fiber.Ctx) error {
	expenseID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := handler.repos.Expenses.Delete(expenseID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
