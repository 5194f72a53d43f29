package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/service"
	"github.com/nawabifest/backend/pkg/utils"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *utils.Validator
}

func NewCartHandler(cartService *service.CartService, validator *utils.Validator) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	items, err := h.cartService.GetCart(userID)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"items": items,
		"count": len(items),
	}, ""))
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	item, err := h.cartService.AddItem(userID, req.EventSlug)
	if err != nil {
		return domainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(item, "Added to cart"))
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	if err := h.cartService.RemoveItem(userID, c.Params("slug")); err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Removed from cart"))
}
