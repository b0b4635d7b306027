package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// StatusMapper lets a service layer translate its sentinel errors into HTTP
// status codes without serverutils importing it.
type StatusMapper func(err error) (status int, ok bool)

// ErrorHandlerMiddleware renders errors returned by downstream handlers in
// the response envelope. Unknown errors become 500 without leaking details.
func ErrorHandlerMiddleware(mappers ...StatusMapper) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, message := resolve(err, mappers)
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}

func resolve(err error, mappers []StatusMapper) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest, validationErr.Error()
	}

	for _, m := range mappers {
		if status, ok := m(err); ok {
			return status, err.Error()
		}
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
