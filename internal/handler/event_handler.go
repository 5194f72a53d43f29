package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nawabifest/backend/internal/models"
	"github.com/nawabifest/backend/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) GetCatalog(c *fiber.Ctx) error {
	events, err := h.eventService.GetCatalog()
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *EventHandler) GetBySlug(c *fiber.Ctx) error {
	event, err := h.eventService.GetBySlug(c.Params("slug"))
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, ""))
}
