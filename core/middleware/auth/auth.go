package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// Config configures the middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
}

// New returns middleware that rejects requests without the configured key.
func New(cfg Config) fiber.Handler {
	apiKey := []byte(cfg.ApiKey)
	return func(c *fiber.Ctx) error {
		if len(apiKey) == 0 {
			return c.Next()
		}
		given := c.Get(Header)
		if subtle.ConstantTimeCompare([]byte(given), apiKey) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
