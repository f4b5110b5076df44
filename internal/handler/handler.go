package handler

import (
	"errors"

	"go-erp-dashboard/internal/service"
	"go-erp-dashboard/internal/store"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps service failures onto status codes: missing records are
// 404, storage outages are 503 (the caller's data is still valid and the
// request can be retried), everything else is a 400 from validation.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrUnavailable):
		return c.Status(503).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}
