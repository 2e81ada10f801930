package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasreynoso/forja/internal/models"
)

type teamInput struct {
	Name  string `json:"name" form:"name"`
	Sport string `json:"sport" form:"sport"`
}

type playerInput struct {
	FullName string `json:"full_name" form:"full_name"`
	Position string `json:"position" form:"position"`
}

type assessmentInput struct {
	Metric string  `json:"metric" form:"metric"`
	Value  float64 `json:"value" form:"value"`
	Unit   string  `json:"unit" form:"unit"`
}

func (handler *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := handler.repos.Teams.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"teams": teams})
}

func (handler *Handler) GetTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	team, err := handler.repos.Teams.FindWithPlayers(teamID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "team not found")
	}
	return c.JSON(fiber.Map{"team": team})
}

func (handler *Handler) CreateTeam(c *fiber.Ctx) error {
	input := teamInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	team := models.Team{Name: name, Sport: strings.TrimSpace(input.Sport)}
	if err := handler.repos.Teams.Create(&team); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"team": team})
}

func (handler *Handler) DeleteTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := handler.repos.Teams.Delete(teamID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AddPlayer(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := handler.repos.Teams.FindWithPlayers(teamID); err != nil {
		return apiError(c, fiber.StatusNotFound, "team not found")
	}

	input := playerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return apiError(c, fiber.StatusBadRequest, "full_name is required")
	}

	player := models.Player{TeamID: teamID, FullName: fullName, Position: strings.TrimSpace(input.Position)}
	if err := handler.repos.Teams.CreatePlayer(&player); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"player": player})
}

// RecordAssessment appends a physical test result to a player's history;
// results are never overwritten, progress is the whole series.
func (handler *Handler) RecordAssessment(c *fiber.Ctx) error {
	playerID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := handler.repos.Teams.FindPlayer(playerID); err != nil {
		return apiError(c, fiber.StatusNotFound, "player not found")
	}

	input := assessmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	metric := strings.TrimSpace(input.Metric)
	if metric == "" {
		return apiError(c, fiber.StatusBadRequest, "metric is required")
	}

	assessment := models.Assessment{
		PlayerID:   playerID,
		Metric:     metric,
		Value:      input.Value,
		Unit:       strings.TrimSpace(input.Unit),
		RecordedAt: handler.now(),
	}
	if err := handler.repos.Teams.CreateAssessment(&assessment); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"assessment": assessment})
}

func (handler *Handler) ListPlayerAssessments(c *fiber.Ctx) error {
	playerID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	assessments, err := handler.repos.Teams.ListAssessmentsByPlayer(playerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "operation failed")
	}
	return c.JSON(fiber.Map{"assessments": assessments})
}
