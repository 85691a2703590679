package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/noesis-app/noesis/internal/services"
)

func (handler *Handler) SubmitOnboarding(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := onboardingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	outcome, err := handler.onboardingService.Submit(c.UserContext(), user.ID, services.OnboardingInput{
		Role:              input.Role,
		WakeUpTime:        input.WakeUpTime,
		SleepInconsistent: input.SleepInconsistent,
		CurrentHabits:     input.CurrentHabits,
		ConsistencyLevel:  input.ConsistencyLevel,
		DailyFreeTime:     input.DailyFreeTime,
		FocusArea:         input.FocusArea,
		Blockers:          input.Blockers,
		ExtraInfo:         input.ExtraInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOnboardingAlreadySubmitted):
			return apiError(c, fiber.StatusBadRequest, "onboarding form already submitted")
		case errors.Is(err, services.ErrOnboardingRoleRequired),
			errors.Is(err, services.ErrOnboardingFocusAreaRequired),
			errors.Is(err, services.ErrValueNotAllowed):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save onboarding form")
		}
	}

	response := fiber.Map{
		"message": "Form submitted successfully",
		"form":    outcome.Form,
	}
	if outcome.Warning != "" {
		response["warning"] = outcome.Warning
	} else {
		response["habits"] = outcome.Habits
		response["source"] = outcome.Source
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (handler *Handler) GetOnboarding(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	form, err := handler.onboardingService.Fetch(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrOnboardingFormNotFound) {
			return apiError(c, fiber.StatusNotFound, "onboarding form not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load onboarding form")
	}
	return c.JSON(form)
}
