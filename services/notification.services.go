package services

import (
	Errors "errors"

	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/schemas"
	"solamate_server/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetNotifications lists a wallet's notifications, newest first
func (h *Handler) GetNotifications(c *fiber.Ctx) error {
	const op = "notifications.get.svc"

	req := new(schemas.NotificationsQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "query", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	ns, err := h.Notifications.List(c.UserContext(), req.WalletAddress, req.UnreadOnly)
	if err != nil {
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	res := schemas.NotificationsResponse{
		Success:       true,
		Notifications: make([]schemas.NotificationSchema, len(ns)),
	}
	for i := range ns {
		res.Notifications[i] = helpers.NotificationToSchema(&ns[i])
		if !ns[i].Read {
			res.UnreadCount++
		}
	}
	return c.JSON(res)
}

// CreateNotification stores a notification and pushes it to the wallet's
// open streams
func (h *Handler) CreateNotification(c *fiber.Ctx) error {
	const op = "notifications.create.svc"

	req := new(schemas.CreateNotificationSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	n := &storage.Notification{
		WalletAddress: req.WalletAddress,
		Type:          req.Type,
		Title:         req.Title,
		Message:       req.Message,
		Data:          req.Data,
	}
	if err := h.Notifications.Create(c.UserContext(), n); err != nil {
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	out := helpers.NotificationToSchema(n)
	if h.Events != nil {
		if err := h.Events.Notify(c.UserContext(), n.WalletAddress, out); err != nil {
			global.MonitorLogger.Warn("notify failed", zap.String("op", op), zap.String("wallet", n.WalletAddress), zap.Error(err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.NotificationResponse{
		Success:      true,
		Notification: out,
	})
}

// MarkNotificationRead marks ?id= as read
func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	const op = "notifications.read.svc"

	req := new(schemas.MarkReadQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "query", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if _, err := h.Notifications.MarkRead(c.UserContext(), req.ID); err != nil {
		if Errors.Is(err, storage.ErrNotFound) {
			return errors.HandleNotFoundError(c, "Notification not found")
		}
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	return helpers.OKResponse(c)
}

// DeleteNotifications deletes ?id= or every notification of ?walletAddress=
func (h *Handler) DeleteNotifications(c *fiber.Ctx) error {
	const op = "notifications.delete.svc"

	req := new(schemas.DeleteNotificationsQuery)

	if err := c.QueryParser(req); err != nil {
		return errors.HandleBadRequestError(c, "query", "Invalid query")
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	if req.ID != "" {
		if err := h.Notifications.Delete(c.UserContext(), req.ID); err != nil {
			if Errors.Is(err, storage.ErrNotFound) {
				return errors.HandleNotFoundError(c, "Notification not found")
			}
			return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
		}
		return c.JSON(schemas.DeleteNotificationsResponse{
			Success: true,
			Deleted: 1,
		})
	}

	n, err := h.Notifications.DeleteAll(c.UserContext(), req.WalletAddress)
	if err != nil {
		return errors.HandleInternalError(c, op, "ScyllaDB: "+err.Error())
	}

	return c.JSON(schemas.DeleteNotificationsResponse{
		Success: true,
		Deleted: n,
	})
}
