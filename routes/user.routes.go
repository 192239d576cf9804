package routes

import (
	"solamate_server/config"
	"solamate_server/middlewares"
	"solamate_server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

func userRoutes(api fiber.Router, h *services.Handler) {
	api.Get("/profile", middlewares.RequireWallet, h.GetProfile)
	api.Post("/profile", h.SaveProfile)
	api.Get("/avatar", middlewares.RequireWallet, h.GetAvatar)

	api.Get("/users", cache.New(cache.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Query("refresh") == "true"
		},
		Expiration:   config.Config.Cache.UsersTTLDuration(),
		CacheControl: true,
	}), h.GetUsers)
	api.Get("/search-users", h.SearchUsers)
}
