package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
	"github.com/nicolasreynoso/forja/internal/services"
)

type benchmarkInput struct {
	ExerciseID uint    `json:"exercise_id" form:"exercise_id"`
	Value      float64 `json:"value" form:"value"`
	Unit       string  `json:"unit" form:"unit"`
}

type startSessionInput struct {
	RoutineID uint `json:"routine_id" form:"routine_id"`
}

func (handler *Handler) ListMyBenchmarks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	benchmarks, err := handler.repos.Progress.ListBenchmarksByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"benchmarks": benchmarks})
}

func (handler *Handler) CreateBenchmark(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := benchmarkInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.ExerciseID == 0 {
		return apiError(c, fiber.StatusBadRequest, "exercise_id is required")
	}
	if input.Value <= 0 {
		return apiError(c, fiber.StatusBadRequest, "value must be positive")
	}
	if _, err := handler.repos.Exercises.FindByID(input.ExerciseID); err != nil {
		return apiError(c, fiber.StatusNotFound, "exercise not found")
	}

	benchmark := models.Benchmark{
		UserID:     user.ID,
		ExerciseID: input.ExerciseID,
		Value:      input.Value,
		Unit:       input.Unit,
		RecordedAt: handler.now(),
	}
	if err := handler.repos.Progress.CreateBenchmark(&benchmark); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"benchmark": benchmark})
}

// StartSession opens a workout timer. One open session per student; starting
// again while one is running returns the running one.
func (handler *Handler) StartSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	input := startSessionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.RoutineID == 0 {
		return apiError(c, fiber.StatusBadRequest, "routine_id is required")
	}

	open, found, err := handler.repos.Progress.FindOpenSession(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	if found {
		return c.JSON(fiber.Map{"session": open, "already_running": true})
	}

	session := models.SessionLog{
		UserID:    user.ID,
		RoutineID: input.RoutineID,
		StartedAt: handler.now(),
	}
	if err := handler.repos.Progress.CreateSession(&session); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": session})
}

// FinishSession closes the open timer. Duration is recomputed from the start
// timestamp so a stale client clock cannot distort it.
func (handler *Handler) FinishSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	open, found, err := handler.repos.Progress.FindOpenSession(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no session in progress")
	}

	now := handler.now()
	elapsed := services.ElapsedSeconds(open.StartedAt, now)
	if err := handler.repos.Progress.FinishSession(open.ID, now, elapsed); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{
		"duration_seconds": elapsed,
		"duration":         services.FormatDuration(elapsed),
	})
}

func (handler *Handler) ListMySessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	sessions, err := handler.repos.Progress.ListFinishedSessions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}

	type sessionView struct {
		models.SessionLog
		Duration string `json:"duration"`
	}
	views := make([]sessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, sessionView{
			SessionLog: session,
			Duration:   services.FormatDuration(session.DurationSeconds),
		})
	}
	return c.JSON(fiber.Map{"sessions": views})
}
