package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/noesis-app/noesis/internal/services"
)

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habits, err := handler.habitService.ListActive(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habits")
	}
	return c.JSON(habits)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := habitInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habitService.Create(user.ID, services.HabitInput{
		Title:       input.Title,
		Description: input.Description,
		Schedule:    input.Schedule,
		Points:      input.Points,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitTitleRequired), errors.Is(err, services.ErrValueNotAllowed):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID, err := c.ParamsInt("id")
	if err != nil || habitID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	completion, err := handler.gamificationService.CompleteHabit(user.ID, uint(habitID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			return apiError(c, fiber.StatusNotFound, "habit not found")
		case errors.Is(err, services.ErrHabitNotActive):
			return apiError(c, fiber.StatusBadRequest, "habit is not active")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to complete habit")
		}
	}

	return c.JSON(fiber.Map{
		"message":       "Habit completed",
		"pointsAwarded": completion.PointsAwarded,
		"totalPoints":   completion.TotalPoints,
		"level":         completion.Level,
	})
}
