package middleware

import (
	"runtime/debug"
	"teens-language/config"
	"teens-language/pkg/apperror"
	"teens-language/pkg/apperror/status"
	"teens-language/pkg/logger"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/google/uuid"
)

// Register installs the middleware chain in order: recovery, request id,
// access log, CORS.
func Register(app *fiber.App) {
	app.Use(PanicRecovery())
	app.Use(RequestID())
	app.Use(AccessLog())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Cfg.Cors.AllowOrigins,
		AllowMethods: config.Cfg.Cors.AllowMethods,
		AllowHeaders: config.Cfg.Cors.AllowHeaders,
	}))
}

// RequestID makes sure every request carries an X-Request-ID, generating one
// when the client sent none, and echoes it back.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
			c.Request().Header.Set(fiber.HeaderXRequestID, id)
		}
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

func AccessLog() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.WithFields(map[string]interface{}{
			"module":     config.ModuleServer,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.Get(fiber.HeaderXRequestID),
		}).Info("request")
		return err
	}
}

// PanicRecovery turns a panic into a 500 with the standard error payload.
func PanicRecovery() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				// Log the panic with stack trace
				stack := debug.Stack()
				logger.WithFields(map[string]interface{}{
					"panic":      r,
					"method":     c.Method(),
					"path":       c.Path(),
					"ip":         c.IP(),
					"user_agent": c.Get("User-Agent"),
					"stack":      string(stack),
				}).Errorf("Panic recovered")

				err = c.Status(fiber.StatusInternalServerError).JSON(apperror.ErrorResponse{
					Error:     "internal server error",
					ErrorCode: apperror.Code(status.ErrorCodeInternal),
				})
			}
		}()
		return c.Next()
	}
}
