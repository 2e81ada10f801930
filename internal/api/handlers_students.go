package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/services"
)

var errNotStudent = errors.New("account is not a student")

type createStudentInput struct {
	DNI          string `json:"dni" form:"dni"`
	FullName     string `json:"full_name" form:"full_name"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	ActivityType string `json:"activity_type" form:"activity_type"`
}

type updateStudentInput struct {
	FullName     string `json:"full_name" form:"full_name"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	ActivityType string `json:"activity_type" form:"activity_type"`
}

func (handler *Handler) ListStudents(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query != "" {
		students, err := handler.repos.Users.SearchStudents(query, 50)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "operation failed")
		}
		return c.JSON(fiber.Map{"students": students})
	}

	students, err := handler.repos.Users.ListStudents()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"students": students})
}

// CreateStudent provisions an account with the DNI as the initial password;
// the student is forced to change it on first login.
func (handler *Handler) CreateStudent(c *fiber.Ctx) error {
	input := createStudentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	dni := strings.TrimSpace(input.DNI)
	fullName := strings.TrimSpace(input.FullName)
	if !isValidDNI(dni) {
		return apiError(c, fiber.StatusBadRequest, "dni must be 7 to 9 digits")
	}
	if fullName == "" {
		return apiError(c, fiber.StatusBadRequest, "full_name is required")
	}

	activity := models.ActivityGym
	if raw := strings.TrimSpace(input.ActivityType); raw != "" {
		parsed, err := services.ParseActivity(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "unknown activity type")
		}
		activity = parsed
	}

	exists, err := handler.repos.Users.ExistsByDNI(dni)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "a student with that dni already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dni), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}

	student := models.User{
		DNI:                dni,
		FullName:           fullName,
		Email:              strings.TrimSpace(input.Email),
		Phone:              strings.TrimSpace(input.Phone),
		PasswordHash:       string(hash),
		Role:               models.RoleStudent,
		ActivityType:       activity,
		MustChangePassword: true,
	}
	if err := handler.repos.Users.Create(&student); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"student": student})
}

// GetStudent returns the full admin view of one account: profile, health
// questionnaire, quota standing and recent payments.
func (handler *Handler) GetStudent(c *fiber.Ctx) error {
	student, err := handler.findStudentParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}

	response := fiber.Map{"student": student}

	profile, found, err := handler.repos.Users.FindHealthProfile(student.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	if found {
		response["health_profile"] = profile
	}

	quota, err := handler.payments.QuotaForUser(student, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	response["quota"] = quota

	payments, err := handler.repos.Payments.ListByUser(student.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	response["payments"] = payments

	return c.JSON(response)
}

func (handler *Handler) UpdateStudent(c *fiber.Ctx) error {
	student, err := handler.findStudentParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}

	input := updateStudentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if fullName := strings.TrimSpace(input.FullName); fullName != "" {
		updates["full_name"] = fullName
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		updates["email"] = email
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		updates["phone"] = phone
	}
	if raw := strings.TrimSpace(input.ActivityType); raw != "" {
		activity, err := services.ParseActivity(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "unknown activity type")
		}
		updates["activity_type"] = activity
	}
	if len(updates) == 0 {
		return apiError(c, fiber.StatusBadRequest, "nothing to update")
	}

	if err := handler.repos.Users.UpdateByID(student.ID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ResetStudentPassword sets the password back to the DNI and forces a change
// on next login.
func (handler *Handler) ResetStudentPassword(c *fiber.Ctx) error {
	student, err := handler.findStudentParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(student.DNI), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	if err := handler.repos.Users.UpdatePassword(student.ID, string(hash), true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteStudent(c *fiber.Ctx) error {
	student, err := handler.findStudentParam(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}
	if err := handler.repos.Users.DeleteStudentAndRelatedData(student.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) findStudentParam(c *fiber.Ctx) (models.User, error) {
	studentID, err := parseIDParam(c, "id")
	if err != nil {
		return models.User{}, err
	}
	student, err := handler.repos.Users.FindByID(studentID)
	if err != nil {
		return models.User{}, err
	}
	if student.Role != models.RoleStudent {
		return models.User{}, errNotStudent
	}
	return student, nil
}
