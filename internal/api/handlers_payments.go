package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
)

type transferProofInput struct {
	Amount   float64 `json:"amount" form:"amount"`
	ProofURL string  `json:"proof_url" form:"proof_url"`
}

type registerPaymentInput struct {
	UserID   uint    `json:"user_id" form:"user_id"`
	Amount   float64 `json:"amount" form:"amount"`
	Method   string  `json:"method" form:"method"`
	Activity string  `json:"activity" form:"activity"`
	PaidAt   string  `json:"paid_at" form:"paid_at"`
}

type activityPriceInput struct {
	ActivityType string  `json:"activity_type" form:"activity_type"`
	Price        float64 `json:"price" form:"price"`
}

func (handler *Handler) ListMyPayments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	payments, err := handler.repos.Payments.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"payments": payments})
}

// SubmitTransferProof records a bank transfer claim; it stays pending until
// an admin settles it.
func (handler *Handler) SubmitTransferProof(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := transferProofInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	payment, err := handler.payments.SubmitTransferProof(user.ID, input.Amount, input.ProofURL, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"payment": payment})
}

func (handler *Handler) ListPayments(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" {
		payments, err := handler.repos.Payments.ListByStatus(status)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "operation failed")
		}
		return c.JSON(fiber.Map{"payments": payments})
	}

	payments, err := handler.repos.Payments.ListAll(200)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"payments": payments})
}

// RegisterPayment is the admin path for cash or already-verified transfers;
// the payment lands settled and can retag the student's activity.
func (handler *Handler) RegisterPayment(c *fiber.Ctx) error {
	input := registerPaymentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.UserID == 0 {
		return apiError(c, fiber.StatusBadRequest, "user_id is required")
	}
	if _, err := handler.repos.Users.FindByID(input.UserID); err != nil {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}

	paidAt := handler.now()
	if raw := strings.TrimSpace(input.PaidAt); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid paid_at, expected YYYY-MM-DD")
		}
		paidAt = parsed
	}

	payment, err := handler.payments.RegisterPayment(input.UserID, input.Amount, input.Method, input.Activity, paidAt)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"payment": payment})
}

func (handler *Handler) ApprovePayment(c *fiber.Ctx) error {
	paymentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := handler.payments.ApprovePayment(paymentID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) RejectPayment(c *fiber.Ctx) error {
	paymentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := handler.payments.RejectPayment(paymentID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListActivityPrices(c *fiber.Ctx) error {
	prices, err := handler.repos.Settings.ListActivityPrices()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"prices": prices})
}

func (handler *Handler) UpsertActivityPrice(c *fiber.Ctx) error {
	input := activityPriceInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	switch input.ActivityType {
	case models.ActivityGym, models.ActivityPilates, models.ActivityMixed:
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown activity type")
	}
	if input.Price <= 0 {
		return apiError(c, fiber.StatusBadRequest, "price must be positive")
	}
	if err := handler.repos.Settings.UpsertActivityPrice(input.ActivityType, input.Price); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
