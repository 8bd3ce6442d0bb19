package middlewares

import (
	"strings"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const claimsContextKey = "authClaims"

// RequireAuth verifies the bearer token on every request it guards and
// stashes the claims in the request locals.
func RequireAuth(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization header is missing"})
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "bearer token is missing"})
		}

		claims, err := authService.VerifyToken(token)
		if err != nil {
			configslog.Log.Warn("token rejected", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token could not be verified"})
		}
		if claims == nil || claims.UserID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token carries no user"})
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the verified claims RequireAuth stored, or nil on an
// unguarded route.
func ClaimsFrom(c *fiber.Ctx) *services.AuthClaims {
	claims, _ := c.Locals(claimsContextKey).(*services.AuthClaims)
	return claims
}
