package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/noesis-app/noesis/internal/services"
)

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) GetUserByID(c *fiber.Ctx) error {
	publicID := strings.TrimSpace(c.Params("id"))
	if publicID == "" {
		return apiError(c, fiber.StatusBadRequest, "user id is required")
	}

	user, err := handler.authService.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, "user not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	return c.JSON(user)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.authService.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(users)
}
