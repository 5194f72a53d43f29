package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/service"
	"github.com/nawabifest/backend/pkg/utils"
)

type TeamHandler struct {
	teamService *service.TeamService
	validator   *utils.Validator
}

func NewTeamHandler(teamService *service.TeamService, validator *utils.Validator) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		validator:   validator,
	}
}

func (h *TeamHandler) CreateTeam(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	team, err := h.teamService.CreateTeam(userID, req)
	if err != nil {
		return domainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(fiber.Map{
		"team": team,
	}, "Team created"))
}

func (h *TeamHandler) JoinTeam(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.JoinTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	team, err := h.teamService.JoinTeam(userID, req.TeamCode)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"team_name": team.Name,
	}, "Joined team"))
}

func (h *TeamHandler) GetMyTeam(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	team, err := h.teamService.GetMyTeam(userID, c.Params("slug"))
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(team, ""))
}
