package middlewares

import (
	Errors "errors"

	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// AuthenticateStream authenticates websocket connection with the stream
// token from ?token=
func AuthenticateStream(c *fiber.Ctx) error {

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	wallet, err := helpers.ParseJWT(c.Query("token"))
	if err != nil {
		if Errors.Is(err, helpers.ErrTokenExpired) {
			return errors.HandleBadRequestError(c, "AccessToken", "Token expired")
		}
		return errors.HandleUnauthorizedError(c)
	}

	c.Locals("wallet", wallet)
	return c.Next()
}

// RequireWallet validates ?walletAddress= and stores it in locals
func RequireWallet(c *fiber.Ctx) error {

	req := new(schemas.WalletQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "walletAddress", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	c.Locals("wallet", req.WalletAddress)
	return c.Next()
}
