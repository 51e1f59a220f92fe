package healthcheck

import (
	"context"
	"teens-language/config"
	"teens-language/pkg/apperror"
	"teens-language/pkg/apperror/status"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Pinger is implemented by remote providers that can check their credentials.
type Pinger interface {
	Ping(ctx context.Context) error
}

func ApiHealthCheck(c fiber.Ctx) error {
	return c.SendString("ok")
}

func GeneratorHealthCheck(p Pinger) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return apperror.InternalError(config.ModuleHealth, c, status.New(status.ErrorCodeUnavailable, err))
		}
		return c.SendString("ok")
	}
}
