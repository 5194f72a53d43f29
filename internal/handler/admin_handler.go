package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/service"
	"github.com/nawabifest/backend/pkg/utils"
)

type AdminHandler struct {
	adminService *service.AdminService
	orderService *service.OrderService
	validator    *utils.Validator
}

func NewAdminHandler(adminService *service.AdminService, orderService *service.OrderService, validator *utils.Validator) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		orderService: orderService,
		validator:    validator,
	}
}

func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.adminService.GetAllUsers()
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(users, ""))
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user ID"))
	}

	var req service.AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	user, err := h.adminService.UpdateUser(uint(userID), req)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(user, "User updated"))
}

func (h *AdminHandler) GrantCoins(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user ID"))
	}

	var req service.AdminGrantCoinsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.adminService.GrantCoins(uint(userID), req); err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Coins granted"))
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user ID"))
	}

	if err := h.adminService.DeleteUser(uint(userID)); err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "User deleted"))
}

func (h *AdminHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(orders, ""))
}

func (h *AdminHandler) ReviewOrder(c *fiber.Ctx) error {
	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid order ID"))
	}

	var req models.ReviewOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	order, err := h.orderService.Review(uint(orderID), req)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(order, "Order reviewed"))
}
