package routes

import (
	"solamate_server/services"

	"github.com/gofiber/fiber/v2"
)

func notificationRoutes(api fiber.Router, h *services.Handler) {
	api.Get("/notifications", h.GetNotifications)
	api.Post("/notifications", h.CreateNotification)
	api.Patch("/notifications", h.MarkNotificationRead)
	api.Delete("/notifications", h.DeleteNotifications)
}
