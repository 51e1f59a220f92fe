package apperror

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"teens-language/config"
	"teens-language/pkg/apperror/status"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternalError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"plain", errors.New("db password=hunter2"), fiber.StatusInternalServerError, "TL-9000"},
		{"coded", status.New(status.SearchUnexpected, errors.New("hunter2")), fiber.StatusInternalServerError, "TL-1500"},
		{"unavailable", status.New(status.ErrorCodeUnavailable, errors.New("hunter2")), fiber.StatusServiceUnavailable, "TL-9001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return InternalError(config.ModuleServer, c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.ErrorCode)
			assert.Equal(t, "internal server error", body.Error)
		})
	}
}

func TestStatusNew(t *testing.T) {
	assert.NoError(t, status.New(status.ComicUnexpected, nil))

	cause := errors.New("boom")
	err := status.New(status.ComicUnexpected, cause)
	assert.ErrorIs(t, err, cause)

	var coded status.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, status.ComicUnexpected, coded.ErrorCode())
}
