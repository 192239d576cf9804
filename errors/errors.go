package errors

import (
	Errors "errors"

	"solamate_server/global"
	"solamate_server/schemas"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// InternalServerError is the only text clients see for unexpected failures
const InternalServerError = "Internal server error"

// HandleFatalError handles global error
func HandleFatalError(err error) {
	if err != nil {
		global.InternalLogger.Fatal("fatal", zap.Error(err))
	}
}

// HandleBasicError handles basic error and logs
func HandleBasicError(err error) bool {
	if err != nil {
		global.InternalLogger.Error("basic error", zap.Error(err))
		return true
	}
	return false
}

// HandleComplexError handles complex errors and logs
func HandleComplexError(problem string, err string) error {
	global.MonitorLogger.Warn("complex error", zap.String("problem", problem), zap.String("error", err))
	return Errors.New("Problem: " + problem + "; Error: " + err)
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(schemas.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// HandleInternalError handles internal errors (things that should never happen in normal circumstances)
func HandleInternalError(c *fiber.Ctx, problem string, err string) error {
	global.InternalLogger.Error("internal error",
		zap.String("ip", c.IP()), zap.String("path", c.Path()),
		zap.String("problem", problem), zap.String("error", err),
	)
	return respond(c, fiber.StatusInternalServerError, InternalServerError)
}

// HandleServiceError reports a failed third-party call with a client-facing description
func HandleServiceError(c *fiber.Ctx, problem string, err string, description string) error {
	global.InternalLogger.Error("service error",
		zap.String("path", c.Path()), zap.String("problem", problem), zap.String("error", err),
	)
	return respond(c, fiber.StatusInternalServerError, description)
}

// HandleBadRequestError handles bad request errors (client error that is harmless to server and state)
func HandleBadRequestError(c *fiber.Ctx, problem string, description string) error {
	global.MonitorLogger.Debug("bad request", zap.String("problem", problem), zap.String("description", description))
	return respond(c, fiber.StatusBadRequest, description)
}

// HandleNotFoundError handles lookups of things that do not exist
func HandleNotFoundError(c *fiber.Ctx, description string) error {
	return respond(c, fiber.StatusNotFound, description)
}

// HandleConflictError handles writes that collide with existing state
func HandleConflictError(c *fiber.Ctx, description string) error {
	global.MonitorLogger.Debug("conflict", zap.String("path", c.Path()), zap.String("description", description))
	return respond(c, fiber.StatusConflict, description)
}

// HandleUnauthorizedError handles missing or invalid credentials
func HandleUnauthorizedError(c *fiber.Ctx) error {
	return respond(c, fiber.StatusUnauthorized, "Unauthorized")
}

// HandleTooManyRequestsError handles actions repeated before their cooldown
func HandleTooManyRequestsError(c *fiber.Ctx, description string) error {
	return respond(c, fiber.StatusTooManyRequests, description)
}

// HandleMethodNotAllowed handles requests with an unsupported method
func HandleMethodNotAllowed(c *fiber.Ctx) error {
	return respond(c, fiber.StatusMethodNotAllowed, "Method not allowed")
}

// HandleValidatorError handles errors when validating request
func HandleValidatorError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !Errors.As(err, &verrs) || len(verrs) == 0 {
		return HandleBadRequestError(c, "validator", err.Error())
	}
	validatorErr := verrs[0]
	return HandleBadRequestError(c, validatorErr.StructField(), validatorErr.Field()+" is "+validatorErr.Tag())
}

// HandleBadJsonError handles json request parser errors
func HandleBadJsonError(c *fiber.Ctx) error {
	return HandleBadRequestError(c, "JSON body", "Invalid JSON body")
}

// HandleWebsocketError logs websocket failures
func HandleWebsocketError(ws *websocket.Conn, problem string, err string) {
	global.MonitorLogger.Warn("websocket error",
		zap.String("ip", ws.RemoteAddr().String()), zap.String("problem", problem), zap.String("error", err),
	)
}

// ErrorHandler is the fiber fallback for errors returned by handlers
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if Errors.As(err, &fe) {
		if fe.Code == fiber.StatusMethodNotAllowed {
			return HandleMethodNotAllowed(c)
		}
		return respond(c, fe.Code, fe.Message)
	}
	return HandleInternalError(c, "unhandled", err.Error())
}
