package db

import (
	"github.com/noesis-app/noesis/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByPublicID(publicID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("public_id = ?", publicID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// FindByProviderID looks a user up by the external id of one OAuth provider.
func (repo *UserRepository) FindByProviderID(provider string, providerID string) (models.User, error) {
	column, ok := providerIDColumn(provider)
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}

	var user models.User
	if err := repo.database.Where(column+" = ?", providerID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func providerIDColumn(provider string) (string, bool) {
	switch provider {
	case models.ProviderGoogle:
		return "google_id", true
	case models.ProviderGitHub:
		return "github_id", true
	case models.ProviderDiscord:
		return "discord_id", true
	default:
		return "", false
	}
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
