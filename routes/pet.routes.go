package routes

import (
	"solamate_server/middlewares"
	"solamate_server/services"

	"github.com/gofiber/fiber/v2"
)

func petRoutes(api fiber.Router, h *services.Handler) {
	pet := api.Group("/pet")
	pet.Get("", middlewares.RequireWallet, h.GetPet)
	pet.Post("/adopt", h.AdoptPet)
	pet.Post("/rename", h.RenamePet)
	pet.Post("/feed", h.FeedPet)
	pet.Post("/play", h.PlayPet)
	pet.Post("/xp", h.AddPetXP)
	pet.Get("/tasks", middlewares.RequireWallet, h.GetTasks)
	pet.Post("/tasks/progress", h.TaskProgress)
}
