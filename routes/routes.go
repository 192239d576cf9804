package routes

import (
	"solamate_server/config"
	"solamate_server/middlewares"
	"solamate_server/services"
	"solamate_server/socket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// SetRoutes sets all routes of server
func SetRoutes(app *fiber.App, h *services.Handler, hub *socket.Hub, metrics *middlewares.Metrics, gatherer prometheus.Gatherer) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Config.Origin,
	}))
	app.Use(metrics.Handler)

	app.Use("/stream", socket.InitializeSocket, middlewares.AuthenticateStream)
	app.Get("/stream", websocket.New(hub.Stream))

	publicRoutes(app, h, gatherer)

	api := app.Group(config.Config.Version)
	authRoutes(api, h)
	userRoutes(api, h)
	notificationRoutes(api, h)
	aiRoutes(api, h)
	ipfsRoutes(api, h)
	chainRoutes(api, h)
	petRoutes(api, h)
}
