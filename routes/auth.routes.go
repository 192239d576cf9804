package routes

import (
	"solamate_server/services"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(api fiber.Router, h *services.Handler) {
	auth := api.Group("/auth")
	auth.Post("/nonce", h.Nonce)
	auth.Post("/verify", h.Verify)
}
