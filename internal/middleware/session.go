package middleware

import (
	"github.com/basmahq/moderation-api/internal/dto"
	"github.com/basmahq/moderation-api/internal/models"
	"github.com/basmahq/moderation-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const localsUserKey = "admin_user"
const localsSessionKey = "session_id"

// SessionRequired resolves the sid claim of an already-validated JWT against
// the sessions table and loads the admin user into locals. A revoked or
// expired session fails here even when the JWT itself is still valid.
func SessionRequired(sessions *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c)
		}

		sessionID, err := services.SessionIDFromClaims(claims)
		if err != nil {
			return unauthorized(c)
		}

		user, err := sessions.Authenticate(sessionID)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(localsUserKey, user)
		c.Locals(localsSessionKey, sessionID)
		return c.Next()
	}
}

// CurrentUser returns the admin user loaded by SessionRequired.
func CurrentUser(c *fiber.Ctx) *models.AdminUser {
	user, _ := c.Locals(localsUserKey).(*models.AdminUser)
	return user
}

// CurrentSessionID returns the session id behind the request's token.
func CurrentSessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(localsSessionKey).(string)
	return sid
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized: invalid or expired session",
	})
}
