package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"seekr/backend/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a logger carrying the request id to the user
// context, so services logging through logger.Ctx share the id. An incoming
// X-Request-ID is reused and always echoed back.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDHeader, requestID)

		reqLogger := logger.Logger.With().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(logger.WithContext(c.UserContext(), reqLogger))

		return c.Next()
	}
}
