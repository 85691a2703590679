package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/noesis-app/noesis/internal/services"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Signup(input.Email, input.Username, input.Password, input.Role)
	if err != nil {
		switch {
		// Duplicate accounts answer 400, matching the error contract the
		// clients already handle.
		case errors.Is(err, services.ErrSignupFieldsRequired),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrUsernameTaken):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoginFieldsRequired):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to log in")
		}
	}

	award, err := handler.gamificationService.AwardLoginPoints(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update points")
	}
	user.Points = award.Points
	user.Level = award.Level

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
