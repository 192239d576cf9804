package routes

import (
	"solamate_server/middlewares"
	"solamate_server/services"

	"github.com/gofiber/fiber/v2"
)

func chainRoutes(api fiber.Router, h *services.Handler) {
	api.Get("/friends", h.GetFriends)
	api.Get("/chat-messages", h.GetChatMessages)
	api.Get("/pda", h.DerivePDA)
	api.Get("/expenses/stats", middlewares.RequireWallet, h.GetExpenseStats)
	api.Post("/transfer-error", h.ClassifyTransfer)
}
