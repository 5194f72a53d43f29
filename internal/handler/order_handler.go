package handler

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/service"
	"github.com/nawabifest/backend/pkg/utils"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService *service.OrderService
	passService  *service.PassService
	validator    *utils.Validator
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, passService *service.PassService, validator *utils.Validator, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		passService:  passService,
		validator:    validator,
		logger:       logger.Named("orders_http"),
	}
}

func (h *OrderHandler) GetPassTiers(c *fiber.Ctx) error {
	tiers, err := h.passService.GetTiers()
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(tiers, ""))
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	order, err := h.orderService.Checkout(userID, req)
	if err != nil {
		return domainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(order, "Order created"))
}

func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	orders, err := h.orderService.GetUserOrders(userID)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(orders, ""))
}

func (h *OrderHandler) UploadPaymentProof(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid order ID"))
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("proof file is required"))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.validator.Struct(struct {
		ContentType string `validate:"required,supported_image"`
	}{ContentType: contentType}); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("proof must be a JPEG, PNG, GIF or WebP image"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("could not read uploaded file"))
	}
	defer file.Close()

	order, err := h.orderService.AttachPaymentProof(c.Context(), userID, uint(orderID), fileHeader.Filename, contentType, file)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(order, "Payment proof uploaded"))
}

func (h *OrderHandler) CreateStripeSession(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid order ID"))
	}

	session, err := h.orderService.CreateStripeSession(userID, uint(orderID))
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(session, ""))
}

func (h *OrderHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		h.logger.Warn("webhook signature verification failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Webhook verification failed"))
	}

	if err := h.orderService.HandleStripeWebhook(&event); err != nil {
		h.logger.Error("webhook processing failed", zap.String("type", string(event.Type)), zap.Error(err))
		return domainError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *OrderHandler) GetPassQR(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid order ID"))
	}

	png, err := h.orderService.PassQR(userID, uint(orderID))
	if err != nil {
		return domainError(c, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
