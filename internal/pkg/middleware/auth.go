package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yamamoto-dev/pointbox/internal/pkg/identity"
	"github.com/yamamoto-dev/pointbox/internal/pkg/usercontext"
)

// BearerAuth authenticates requests carrying an identity-provider access
// token. A missing or malformed header and a rejected token are reported
// as distinct 401 bodies so the client can tell them apart.
func BearerAuth(verifier identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		ident, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
			}
			log.Printf("token verification failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}

		c.Locals(usercontext.Key, usercontext.UserContext{
			UserID:     ident.ID,
			Email:      ident.Email,
			IsLoggedIn: true,
		})

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
