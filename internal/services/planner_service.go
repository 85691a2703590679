package services

import (
	"errors"
	"strings"
	"time"

	"github.com/noesis-app/noesis/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTaskTitleRequired   = errors.New("title is required")
	ErrTaskDueDateRequired = errors.New("due date is required")
	ErrTaskNotFound        = errors.New("task not found")
)

type PlannerRepository interface {
	ListByUser(userID uint) ([]models.PlannerTask, error)
	ListByUserForRange(userID uint, from time.Time, to time.Time) ([]models.PlannerTask, error)
	FindOwned(taskID uint, userID uint) (models.PlannerTask, error)
	FindByID(taskID uint) (models.PlannerTask, error)
	Create(task *models.PlannerTask) error
	UpdateByID(taskID uint, updates map[string]any) error
	Delete(taskID uint) error
}

type PlannerService struct {
	tasks    PlannerRepository
	location *time.Location
}

func NewPlannerService(tasks PlannerRepository, location *time.Location) *PlannerService {
	if location == nil {
		location = time.UTC
	}
	return &PlannerService{tasks: tasks, location: location}
}

// DayBounds returns the half-open interval covering one calendar day in the
// given location, so a filter matches every timestamp of that day inclusive.
func DayBounds(day time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(day, location)
	return start, start.AddDate(0, 0, 1)
}

// List returns the user's tasks, optionally restricted to a single day.
func (service *PlannerService) List(userID uint, day *time.Time) ([]models.PlannerTask, error) {
	if day == nil {
		return service.tasks.ListByUser(userID)
	}
	from, to := DayBounds(*day, service.location)
	return service.tasks.ListByUserForRange(userID, from, to)
}

func (service *PlannerService) Create(userID uint, titleRaw string, dueDate time.Time) (models.PlannerTask, error) {
	title := strings.TrimSpace(titleRaw)
	if title == "" {
		return models.PlannerTask{}, ErrTaskTitleRequired
	}
	if dueDate.IsZero() {
		return models.PlannerTask{}, ErrTaskDueDateRequired
	}

	task := models.PlannerTask{
		UserID:    userID,
		Title:     title,
		Completed: false,
		DueDate:   dueDate,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.PlannerTask{}, err
	}
	return task, nil
}

// TaskPatch updates only the fields that are present.
type TaskPatch struct {
	Title     *string
	Completed *bool
	DueDate   *time.Time
}

func (service *PlannerService) Update(userID uint, taskID uint, patch TaskPatch) (models.PlannerTask, error) {
	task, err := service.tasks.FindOwned(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PlannerTask{}, ErrTaskNotFound
		}
		return models.PlannerTask{}, err
	}

	updates := make(map[string]any, 3)
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.PlannerTask{}, ErrTaskTitleRequired
		}
		updates["title"] = title
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}
	if len(updates) == 0 {
		return task, nil
	}

	if err := service.tasks.UpdateByID(task.ID, updates); err != nil {
		return models.PlannerTask{}, err
	}
	return service.tasks.FindByID(task.ID)
}

func (service *PlannerService) Delete(userID uint, taskID uint) error {
	task, err := service.tasks.FindOwned(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return service.tasks.Delete(task.ID)
}
