package healthcheck

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthChecks(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app, pingerFunc(func(context.Context) error { return nil }))

	for _, path := range []string{"/health/api", "/health/openai"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "ok", string(body))
	}
}

func TestGeneratorHealthCheck_Down(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app, pingerFunc(func(context.Context) error { return errors.New("401 invalid key") }))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health/openai", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), `"error_code":"TL-9001"`)
	assert.NotContains(t, string(body), "invalid key")
}
