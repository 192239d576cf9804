package services

import (
	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Nonce issues a one-time sign-in challenge for a wallet
func (h *Handler) Nonce(c *fiber.Ctx) error {
	const op = "auth.nonce.svc"

	req := new(schemas.NonceSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	nonce, err := helpers.RandomTokenString(16)
	if err != nil {
		return errors.HandleInternalError(c, op, "rand: "+err.Error())
	}

	if err := h.Nonces.Issue(c.UserContext(), req.WalletAddress, nonce, global.NonceDuration); err != nil {
		return errors.HandleInternalError(c, op, "Redis: "+err.Error())
	}

	expiresAt := h.Now().Add(global.NonceDuration).Unix()
	return c.JSON(schemas.NonceResponse{
		Success:   true,
		Nonce:     nonce,
		Message:   helpers.SignInMessage(req.WalletAddress, nonce, expiresAt),
		ExpiresAt: expiresAt,
	})
}

// Verify exchanges a signed challenge for a stream token. The nonce is
// consumed only when the signature checks out.
func (h *Handler) Verify(c *fiber.Ctx) error {
	const op = "auth.verify.svc"

	req := new(schemas.VerifySchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if req.ExpiresAt < h.Now().Unix() {
		return errors.HandleBadRequestError(c, "expiresAt", "Sign-in request expired")
	}

	message := helpers.SignInMessage(req.WalletAddress, req.Nonce, req.ExpiresAt)
	if err := helpers.VerifySignature(req.WalletAddress, message, req.Signature); err != nil {
		return errors.HandleUnauthorizedError(c)
	}

	ok, err := h.Nonces.Redeem(c.UserContext(), req.WalletAddress, req.Nonce)
	if err != nil {
		return errors.HandleInternalError(c, op, "Redis: "+err.Error())
	}
	if !ok {
		return errors.HandleUnauthorizedError(c)
	}

	token, exp, err := helpers.GenerateJWT(req.WalletAddress, h.Now())
	if err != nil {
		return errors.HandleInternalError(c, op, "jwt: "+err.Error())
	}

	return c.JSON(schemas.VerifyResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: exp,
	})
}
