package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/noesis-app/noesis/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	FindByPublicID(publicID string) (models.User, error)
	Create(user *models.User) error
	List() ([]models.User, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup creates a credential-backed account. Email and username are globally
// unique; duplicates surface as conflicts, not silent merges.
func (service *AuthService) Signup(emailRaw string, usernameRaw string, passwordRaw string, roleRaw string) (models.User, error) {
	email, username, password, err := NormalizeSignupInput(emailRaw, usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	emailTaken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if emailTaken {
		return models.User{}, ErrEmailTaken
	}

	usernameTaken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		PublicID:     uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         NormalizeSignupRole(roleRaw),
		Points:       0,
		Level:        1,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies credentials. OAuth-only accounts carry an empty password
// hash and can never log in with a password.
func (service *AuthService) Login(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeLoginInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if user.PasswordHash == "" {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) FindByPublicID(publicID string) (models.User, error) {
	user, err := service.users.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) ListUsers() ([]models.User, error) {
	return service.users.List()
}
