package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidItemType = errors.New("item type must be prompt or template")
	ErrEmptyComment    = errors.New("comment cannot be empty")
	ErrInvalidParent   = errors.New("parent comment does not belong to this item")
	ErrUnauthenticated = errors.New("sign in required")
)

// StatusFor maps service errors to HTTP status codes for the error handler.
func StatusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, ErrInvalidItemType), errors.Is(err, ErrEmptyComment), errors.Is(err, ErrInvalidParent):
		return fiber.StatusBadRequest, true
	case errors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized, true
	}
	return 0, false
}
