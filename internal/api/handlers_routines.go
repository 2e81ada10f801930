package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/services"
)

type routineItemInput struct {
	ExerciseID uint   `json:"exercise_id" form:"exercise_id"`
	DayNumber  int    `json:"day_number" form:"day_number"`
	OrderIndex int    `json:"order_index" form:"order_index"`
	Sets       int    `json:"sets" form:"sets"`
	Reps       string `json:"reps" form:"reps"`
	TargetRPE  int    `json:"target_rpe" form:"target_rpe"`
	BlockType  string `json:"block_type" form:"block_type"`
	Notes      string `json:"notes" form:"notes"`
}

type createRoutineInput struct {
	Name         string             `json:"name" form:"name"`
	ActivityType string             `json:"activity_type" form:"activity_type"`
	Notes        string             `json:"notes" form:"notes"`
	Structure    string             `json:"structure" form:"structure"`
	TargetRPE    string             `json:"target_rpe" form:"target_rpe"`
	AssignedTo   *uint              `json:"assigned_to" form:"assigned_to"`
	Items        []routineItemInput `json:"items" form:"items"`
}

type assignRoutineInput struct {
	UserID *uint `json:"user_id" form:"user_id"`
}

type exerciseInput struct {
	Name        string `json:"name" form:"name"`
	MuscleGroup string `json:"muscle_group" form:"muscle_group"`
	VideoURL    string `json:"video_url" form:"video_url"`
}

// ListMyRoutines returns the routines a student may see: those assigned to
// them plus the unassigned templates, narrowed by their activity type.
func (handler *Handler) ListMyRoutines(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	routines, err := handler.repos.Routines.ListVisibleToUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"routines": services.FilterRoutinesByActivity(routines, user.ActivityType)})
}

func (handler *Handler) GetMyRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	routineID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	routine, err := handler.repos.Routines.FindWithItems(routineID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}
	if !routineVisibleTo(routine, user) {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}
	return c.JSON(fiber.Map{"routine": routine})
}

func routineVisibleTo(routine models.Routine, user *models.User) bool {
	if routine.AssignedTo != nil && *routine.AssignedTo != user.ID {
		return false
	}
	visible := services.FilterRoutinesByActivity([]models.Routine{routine}, user.ActivityType)
	return len(visible) == 1
}

func (handler *Handler) ListRoutines(c *fiber.Ctx) error {
	routines, err := handler.repos.Routines.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"routines": routines})
}

func (handler *Handler) GetRoutine(c *fiber.Ctx) error {
	routineID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	routine, err := handler.repos.Routines.FindWithItems(routineID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}
	return c.JSON(fiber.Map{"routine": routine})
}

func (handler *Handler) CreateRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := createRoutineInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	activity, err := services.ParseActivity(input.ActivityType)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown activity type")
	}
	if len(input.Items) == 0 {
		return apiError(c, fiber.StatusBadRequest, "routine needs at least one exercise")
	}

	items := make([]models.RoutineItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ExerciseID == 0 {
			return apiError(c, fiber.StatusBadRequest, "every item needs an exercise_id")
		}
		if item.Sets <= 0 || strings.TrimSpace(item.Reps) == "" {
			return apiError(c, fiber.StatusBadRequest, "every item needs sets and reps")
		}
		dayNumber := item.DayNumber
		if dayNumber <= 0 {
			dayNumber = 1
		}
		items = append(items, models.RoutineItem{
			ExerciseID: item.ExerciseID,
			DayNumber:  dayNumber,
			OrderIndex: item.OrderIndex,
			Sets:       item.Sets,
			Reps:       strings.TrimSpace(item.Reps),
			TargetRPE:  item.TargetRPE,
			BlockType:  strings.TrimSpace(item.BlockType),
			Notes:      strings.TrimSpace(item.Notes),
		})
	}

	routine := models.Routine{
		Name:         name,
		ActivityType: activity,
		Notes:        strings.TrimSpace(input.Notes),
		Structure:    strings.TrimSpace(input.Structure),
		TargetRPE:    strings.TrimSpace(input.TargetRPE),
		AssignedTo:   input.AssignedTo,
		CreatedBy:    user.ID,
	}
	if err := handler.repos.Routines.CreateWithItems(&routine, items); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"routine": routine})
}

// AssignRoutine points a routine at one student, or back to the shared pool
// when user_id is null.
func (handler *Handler) AssignRoutine(c *fiber.Ctx) error {
	routineID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := handler.repos.Routines.FindWithItems(routineID); err != nil {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}

	input := assignRoutineInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.UserID != nil {
		student, err := handler.repos.Users.FindByID(*input.UserID)
		if err != nil || student.Role != models.RoleStudent {
			return apiError(c, fiber.StatusNotFound, "student not found")
		}
	}

	if err := handler.repos.Routines.Assign(routineID, input.UserID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteRoutine(c *fiber.Ctx) error {
	routineID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := handler.repos.Routines.Delete(routineID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	exercises, err := handler.repos.Exercises.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	input := exerciseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	exercise := models.Exercise{
		Name:        name,
		MuscleGroup: strings.TrimSpace(input.MuscleGroup),
		VideoURL:    strings.TrimSpace(input.VideoURL),
	}
	if err := handler.repos.Exercises.Create(&exercise); err != nil {
		return apiError(c, fiber.StatusConflict, "an exercise with that name already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"exercise": exercise})
}

func (handler *Handler) DeleteExercise(c *fiber.Ctx) error {
	exerciseID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := handler.repos.Exercises.Delete(exerciseID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
