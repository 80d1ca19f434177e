package shared

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Response bodies mirror the shapes the web client already consumes:
// successes are {"success": true, ...}, failures are {"error": "<message>"}.

func ResponseSuccess(c *fiber.Ctx, statusCode int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(statusCode).JSON(body)
}

func ResponseError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}

// ErrorHandler is the fiber error handler. Classified AppErrors map to their
// status code; everything else is logged server side and surfaced as a bare
// 500 so store and hashing internals never reach the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := GetAppError(err); ok {
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			log.WithFields(log.Fields{
				RequestID: c.Locals(RequestID),
				"path":    c.Path(),
			}).WithError(appErr.Err).Error("request failed")
			return ResponseError(c, appErr.StatusCode, "Server error")
		}
		return ResponseError(c, appErr.StatusCode, appErr.Message)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return ResponseError(c, fiberErr.Code, fiberErr.Message)
	}

	log.WithFields(log.Fields{
		RequestID: c.Locals(RequestID),
		"path":    c.Path(),
	}).WithError(err).Error("unhandled error")
	return ResponseError(c, fiber.StatusInternalServerError, "Server error")
}
