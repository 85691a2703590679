package db

import (
	"github.com/noesis-app/noesis/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

// ListActiveByUser returns the user's active habits, newest first.
func (repo *HabitRepository) ListActiveByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// FindOwned returns the habit only when it belongs to the given user.
func (repo *HabitRepository) FindOwned(habitID uint, userID uint) (models.Habit, error) {
	var habit models.Habit
	if err := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) CreateBatch(habits []models.Habit) ([]models.Habit, error) {
	if len(habits) == 0 {
		return habits, nil
	}
	if err := repo.database.Create(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}
