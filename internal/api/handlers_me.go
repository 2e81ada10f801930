package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/services"
)

// Me returns the authenticated account with its derived quota window and
// section access flags, so a client can render the whole shell in one call.
func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	response := fiber.Map{
		"user":           user,
		"pilates_access": services.CanAccessPilates(user.ActivityType),
	}

	if user.Role == models.RoleStudent {
		quota, err := handler.payments.QuotaForUser(*user, handler.now())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "operation failed")
		}
		response["quota"] = quota

		profile, found, err := handler.repos.Users.FindHealthProfile(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "operation failed")
		}
		if found {
			response["health_profile"] = profile
		}
	}

	return c.JSON(response)
}
