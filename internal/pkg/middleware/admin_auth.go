package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Darkace01/commerce-control-suite/internal/pkg/env"
)

// AdminAuthMiddleware authenticates admin API requests against the bcrypt
// hash of the admin token configured in ADMIN_TOKEN_HASH. The token is read
// from the X-API-Key header or an Authorization bearer value. Use
// tools/gentoken to generate a token and its hash.
func AdminAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractTokenFromHeader(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing admin token"})
		}

		hash := env.GetEnv("ADMIN_TOKEN_HASH", "")
		if hash == "" {
			log.Print("admin auth middleware: ADMIN_TOKEN_HASH not configured")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "Admin token not configured"})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid admin token"})
		}

		return c.Next()
	}
}

func extractTokenFromHeader(c *fiber.Ctx) string {
	token := strings.TrimSpace(c.Get("X-API-Key"))
	if token != "" {
		return token
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
