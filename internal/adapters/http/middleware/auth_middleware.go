package middleware

import (
	"strings"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/config"
	"gateway-discoveries/internal/pkg/jwt"
	"gateway-discoveries/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals key for verified token claims
const ClaimsKey = "claims"

// Authenticate verifies the Bearer token and stores its claims in the
// request locals. A missing token is 401; a token that is present but
// invalid or expired is 403. The two cases are deliberately distinct
// status codes and clients depend on the split.
func Authenticate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.Validate(token, cfg.JWT.Secret)
		if err != nil {
			return response.Forbidden(c, "Invalid or expired token")
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// Authorize allows only the given roles. It must run after Authenticate;
// absent claims are treated as unauthenticated, not as a role failure.
func Authorize(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(ClaimsKey).(*jwt.Claims)
		if !ok || claims == nil {
			return response.Unauthorized(c, "Authentication required")
		}

		for _, role := range allowedRoles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return response.Forbidden(c, "Insufficient permissions")
	}
}

// AdminOnly allows only the admin role
func AdminOnly() fiber.Handler {
	return Authorize(models.RoleAdmin)
}

// StaffOnly allows park staff and admins
func StaffOnly() fiber.Handler {
	return Authorize(models.RoleAdmin, models.RoleKrugerStaff)
}

// ClaimsFromContext returns the verified claims set by Authenticate
func ClaimsFromContext(c *fiber.Ctx) (*jwt.Claims, bool) {
	claims, ok := c.Locals(ClaimsKey).(*jwt.Claims)
	return claims, ok && claims != nil
}
