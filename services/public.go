package services

import (
	"solamate_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Health reports that the server is up
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(schemas.HealthResponse{
		Success:   true,
		Status:    "ok",
		Timestamp: h.Now().UnixMilli(),
	})
}
