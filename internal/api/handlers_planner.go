package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/noesis-app/noesis/internal/services"
)

func (handler *Handler) GetTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var day *time.Time
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		day = &parsed
	}

	tasks, err := handler.plannerService.List(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := taskInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.DueDate == nil {
		return apiError(c, fiber.StatusBadRequest, "dueDate is required")
	}

	task, err := handler.plannerService.Create(user.ID, input.Title, *input.DueDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskTitleRequired), errors.Is(err, services.ErrTaskDueDateRequired):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create task")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	input := taskPatchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task, err := handler.plannerService.Update(user.ID, uint(taskID), services.TaskPatch{
		Title:     input.Title,
		Completed: input.Completed,
		DueDate:   input.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return apiError(c, fiber.StatusNotFound, "task not found")
		case errors.Is(err, services.ErrTaskTitleRequired):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := handler.plannerService.Delete(user.ID, uint(taskID)); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return apiError(c, fiber.StatusNotFound, "task not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}
