package middleware

import (
	"time"

	"grammologue/internal/logger"
	"grammologue/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const requestIDLocal = "request_id"

// RequestIDMiddleware assigns every request a ULID, reusing a valid inbound X-Request-ID,
// and echoes it in the response. The id is also stored on the user context so
// outbound inference calls carry it.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(util.RequestIDHeader)
		if !util.IsRequestID(id) {
			id = util.NewRequestID()
		}
		c.Locals(requestIDLocal, id)
		c.SetUserContext(util.WithRequestID(c.UserContext(), id))
		c.Set(util.RequestIDHeader, id)
		return c.Next()
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, or "" when it did not run.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDLocal).(string)
	return id
}

// RequestLogger is a middleware that logs HTTP requests
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()
		if err != nil {
			// let the error handler write the response so the logged status is final
			if handlerErr := c.App().Config().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("request_id", RequestID(c)),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return nil
	}
}
