package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/service"
	"github.com/nawabifest/backend/pkg/utils"
)

type RewardHandler struct {
	rewardService   *service.RewardService
	referralService *service.ReferralService
	validator       *utils.Validator
}

func NewRewardHandler(rewardService *service.RewardService, referralService *service.ReferralService, validator *utils.Validator) *RewardHandler {
	return &RewardHandler{
		rewardService:   rewardService,
		referralService: referralService,
		validator:       validator,
	}
}

// Claim is idempotent from the client's point of view: a retry simply fails
// with AlreadyClaimed and leaves the balance untouched.
func (h *RewardHandler) Claim(c *fiber.Ctx) error {
	userEmail, ok := c.Locals("userEmail").(string)
	if !ok || userEmail == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.ClaimRewardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.rewardService.Claim(userEmail, req.Task)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, resp.Message))
}

func (h *RewardHandler) Leaderboard(c *fiber.Ctx) error {
	entries, err := h.referralService.Leaderboard()
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(entries, ""))
}
