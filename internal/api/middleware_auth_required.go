package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired accepts the token from the Authorization header, the token
// query parameter or the x-access-token header, in that order.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	tokenValue := bearerToken(c)
	if tokenValue == "" {
		return apiError(c, fiber.StatusUnauthorized, "authentication token missing")
	}

	userID, err := handler.parseToken(tokenValue)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authorization != "" {
		if token, found := strings.CutPrefix(authorization, "Bearer "); found {
			return strings.TrimSpace(token)
		}
		return authorization
	}
	if token := strings.TrimSpace(c.Query("token")); token != "" {
		return token
	}
	return strings.TrimSpace(c.Get("x-access-token"))
}
