package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noesis-app/noesis/internal/models"
)

var ErrHabitTitleRequired = errors.New("title is required")

type HabitRepository interface {
	ListActiveByUser(userID uint) ([]models.Habit, error)
	Create(habit *models.Habit) error
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) ListActive(userID uint) ([]models.Habit, error) {
	return service.habits.ListActiveByUser(userID)
}

type HabitInput struct {
	Title       string
	Description string
	Schedule    string
	Points      int
}

// Create adds a manual habit. Missing optionals take the same defaults as
// generated habits: daily schedule, ten points, active.
func (service *HabitService) Create(userID uint, input HabitInput) (models.Habit, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Habit{}, ErrHabitTitleRequired
	}

	schedule := strings.TrimSpace(input.Schedule)
	if schedule == "" {
		schedule = models.ScheduleDaily
	}
	if !models.IsValidSchedule(schedule) {
		return models.Habit{}, fmt.Errorf("%w: schedule %q", ErrValueNotAllowed, schedule)
	}

	points := input.Points
	if points <= 0 {
		points = models.DefaultHabitPoints
	}

	habit := models.Habit{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Schedule:    schedule,
		Points:      points,
		IsActive:    true,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}
