package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// jsonError writes the flat error body the API contract uses everywhere,
// e.g. {"error":"Bad request"}.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// internalError logs the underlying cause and hides it from the caller.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Printf("%s: %v", op, err)
	return jsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
