package db

import (
	"time"

	"github.com/noesis-app/noesis/internal/models"
	"gorm.io/gorm"
)

type PlannerTaskRepository struct {
	database *gorm.DB
}

func NewPlannerTaskRepository(database *gorm.DB) *PlannerTaskRepository {
	return &PlannerTaskRepository{database: database}
}

// ListByUser returns the user's tasks ordered by due date, newest created first
// within a day.
func (repo *PlannerTaskRepository) ListByUser(userID uint) ([]models.PlannerTask, error) {
	tasks := make([]models.PlannerTask, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("due_date ASC, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByUserForRange returns tasks whose due date falls inside [from, to).
func (repo *PlannerTaskRepository) ListByUserForRange(userID uint, from time.Time, to time.Time) ([]models.PlannerTask, error) {
	tasks := make([]models.PlannerTask, 0)
	if err := repo.database.
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, from, to).
		Order("due_date ASC, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *PlannerTaskRepository) FindOwned(taskID uint, userID uint) (models.PlannerTask, error) {
	var task models.PlannerTask
	if err := repo.database.
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error; err != nil {
		return models.PlannerTask{}, err
	}
	return task, nil
}

func (repo *PlannerTaskRepository) Create(task *models.PlannerTask) error {
	return repo.database.Create(task).Error
}

func (repo *PlannerTaskRepository) UpdateByID(taskID uint, updates map[string]any) error {
	return repo.database.Model(&models.PlannerTask{}).Where("id = ?", taskID).Updates(updates).Error
}

func (repo *PlannerTaskRepository) FindByID(taskID uint) (models.PlannerTask, error) {
	var task models.PlannerTask
	if err := repo.database.First(&task, taskID).Error; err != nil {
		return models.PlannerTask{}, err
	}
	return task, nil
}

func (repo *PlannerTaskRepository) Delete(taskID uint) error {
	return repo.database.Delete(&models.PlannerTask{}, taskID).Error
}
