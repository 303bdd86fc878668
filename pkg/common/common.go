package common

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidUniqueCode   = errors.New("invalid uniquecode")
	ErrKreditorEmailExists = errors.New("kreditor email already registered")
	ErrMailDelivery        = errors.New("mail delivery failed")
)

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}
