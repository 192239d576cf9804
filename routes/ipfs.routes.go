package routes

import (
	"solamate_server/services"

	"github.com/gofiber/fiber/v2"
)

func ipfsRoutes(api fiber.Router, h *services.Handler) {
	ipfs := api.Group("/ipfs")
	ipfs.Post("/upload", h.UploadFile)
	ipfs.Post("/upload-json", h.UploadJSON)
}
