package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"foodorder/internal/apperrors"
)

// respondError maps a service error to its HTTP response. This is the only
// place error kinds are translated to status codes; everything unrecognized
// is a 500.
func respondError(c *fiber.Ctx, err error) error {
	var status int
	switch apperrors.KindOf(err) {
	case apperrors.KindBadRequest:
		status = fiber.StatusBadRequest
	case apperrors.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case apperrors.KindForbidden:
		status = fiber.StatusForbidden
	case apperrors.KindNotFound:
		status = fiber.StatusNotFound
	case apperrors.KindConflict:
		status = fiber.StatusConflict
	default:
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}
