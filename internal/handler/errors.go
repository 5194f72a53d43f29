package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nawabifest/backend/internal/models"
)

// statusFor maps the domain error taxonomy onto HTTP status codes. Unknown
// errors fall through to 500 with a generic message; handlers should log
// them before calling this.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrInvalidCode):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrAlreadyClaimed),
		errors.Is(err, models.ErrAlreadyInTeam),
		errors.Is(err, models.ErrTeamFull):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, models.ErrInvalidInput):
		return fiber.StatusBadRequest, err.Error()
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

func domainError(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)
	return c.Status(status).JSON(models.ErrorResponse(msg))
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}
