package routes

import (
	"solamate_server/services"

	"github.com/gofiber/fiber/v2"
)

func aiRoutes(api fiber.Router, h *services.Handler) {
	api.Post("/chat", h.Chat)
	api.Post("/pet-chat", h.PetChat)
	api.Post("/pet-tts", h.PetTTS)
	api.Post("/ocr/gemini", h.OCR)
}
