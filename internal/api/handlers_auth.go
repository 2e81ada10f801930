package api

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var dniRegex = regexp.MustCompile(`^\d{7,9}$`)
var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordUpperRegex = regexp.MustCompile(`\p{Lu}`)
var passwordLowerRegex = regexp.MustCompile(`\p{Ll}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

type loginInput struct {
	DNI        string `json:"dni" form:"dni"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	dni := strings.TrimSpace(input.DNI)
	if dni == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "dni and password are required")
	}

	user, err := handler.repos.Users.FindByDNI(dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}

	return c.JSON(fiber.Map{
		"user":                 user,
		"must_change_password": user.MustChangePassword,
		"onboarding_completed": user.OnboardingCompleted,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// ChangePassword also clears the forced-change flag set when an admin
// provisions an account with the DNI as the initial password.
func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
	}
	if input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}
	if message, ok := validatePasswordStrength(input.NewPassword); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	if err := handler.repos.Users.UpdatePassword(user.ID, string(hash), false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func validatePasswordStrength(password string) (string, bool) {
	switch {
	case !passwordLengthRegex.MatchString(password):
		return "password must be at least 8 characters", false
	case !passwordUpperRegex.MatchString(password):
		return "password must contain an uppercase letter", false
	case !passwordLowerRegex.MatchString(password):
		return "password must contain a lowercase letter", false
	case !passwordDigitRegex.MatchString(password):
		return "password must contain a digit", false
	}
	return "", true
}

func isValidDNI(dni string) bool {
	return dniRegex.MatchString(dni)
}
