package socket

import (
	"solamate_server/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// InitializeSocket rejects requests that are not websocket upgrades
func InitializeSocket(c *fiber.Ctx) error {

	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}

	return errors.HandleBadRequestError(c, "websocket_upgrade", fiber.ErrUpgradeRequired.Error())
}
