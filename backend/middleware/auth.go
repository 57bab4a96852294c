package middleware

import (
	"errors"
	"strings"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// TokenCookieName is the session cookie set on login and signup.
const TokenCookieName = "token"

// extractToken finds the session credential: the session cookie first, then
// the Authorization bearer header. First non-blank candidate wins.
func extractToken(c *fiber.Ctx) string {
	if cookie := strings.TrimSpace(c.Cookies(TokenCookieName)); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// AuthMiddleware verifies the session credential and stores the caller's
// user id in the request context. Requests without a valid credential stop
// here with a 401; no token material is passed downstream.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return utils.Unauthorized(c, "Not authorized to access this route")
		}

		userID, err := utils.VerifyToken(tokenString, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Invalid or expired token")
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// AdminMiddleware restricts a route to admin users. It reads the current
// role from the store on every request, so a demoted admin loses access
// immediately. Must run after AuthMiddleware.
func AdminMiddleware(users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return utils.Unauthorized(c, "Not authorized to access this route")
		}

		user, err := users.FindByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return utils.Forbidden(c, "Admin access required")
			}
			return utils.InternalServerError(c, "Server error while checking permissions")
		}
		if user.Role != models.RoleAdmin {
			return utils.Forbidden(c, "Admin access required")
		}

		return c.Next()
	}
}
