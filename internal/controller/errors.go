package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"valia_backend/internal/dataclient"
	"valia_backend/internal/service"
)

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	case errors.Is(err, dataclient.ErrNotImplemented):
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
			"error": "Not implemented",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
