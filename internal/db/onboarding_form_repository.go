package db

import (
	"github.com/noesis-app/noesis/internal/models"
	"gorm.io/gorm"
)

type OnboardingFormRepository struct {
	database *gorm.DB
}

func NewOnboardingFormRepository(database *gorm.DB) *OnboardingFormRepository {
	return &OnboardingFormRepository{database: database}
}

func (repo *OnboardingFormRepository) FindByUser(userID uint) (models.OnboardingForm, error) {
	var form models.OnboardingForm
	if err := repo.database.Where("user_id = ?", userID).First(&form).Error; err != nil {
		return models.OnboardingForm{}, err
	}
	return form, nil
}

func (repo *OnboardingFormRepository) ExistsForUser(userID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.OnboardingForm{}).
		Where("user_id = ?", userID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *OnboardingFormRepository) Create(form *models.OnboardingForm) error {
	return repo.database.Create(form).Error
}
