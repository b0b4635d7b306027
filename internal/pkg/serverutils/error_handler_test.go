package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMissing = errors.New("thing not found")

func TestErrorHandlerMiddleware(t *testing.T) {
	notFound := func(err error) (int, bool) {
		if errors.Is(err, errMissing) {
			return fiber.StatusNotFound, true
		}
		return 0, false
	}

	type payload struct {
		Name string `validate:"required"`
	}

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(notFound))
	app.Get("/fiber", func(*fiber.Ctx) error { return fiber.NewError(fiber.StatusConflict, "busy") })
	app.Get("/validation", func(*fiber.Ctx) error { return ValidateRequest(payload{}) })
	app.Get("/mapped", func(*fiber.Ctx) error { return errMissing })
	app.Get("/unknown", func(*fiber.Ctx) error { return errors.New("db password leaked") })

	tests := []struct {
		path        string
		wantStatus  int
		wantMessage string
	}{
		{"/fiber", fiber.StatusConflict, "busy"},
		{"/validation", fiber.StatusBadRequest, "validation failed: name is required"},
		{"/mapped", fiber.StatusNotFound, "thing not found"},
		{"/unknown", fiber.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body Response[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}
