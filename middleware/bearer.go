package middleware

import (
	"strings"

	"github.com/pkpu-id/tagihan/pkg/common"

	"github.com/gofiber/fiber/v2"
)

// BearerRequired guards the directory endpoints. Only the presence of a
// bearer token is checked; the token value itself is not verified, matching
// the contract the existing frontend relies on.
func BearerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		token = strings.TrimPrefix(token, "Bearer ")

		if token == "" {
			return common.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		return c.Next()
	}
}
