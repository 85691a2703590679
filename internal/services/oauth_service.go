package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/noesis-app/noesis/internal/models"
	"github.com/noesis-app/noesis/internal/security"
	"gorm.io/gorm"
)

var (
	ErrOAuthSubjectMissing = errors.New("oauth profile has no subject id")
	ErrOAuthEmailMissing   = errors.New("oauth profile has no email")
)

const usernameSuffixLength = 4

type OAuthUserRepository interface {
	FindByProviderID(provider string, providerID string) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type OAuthService struct {
	users OAuthUserRepository
}

func NewOAuthService(users OAuthUserRepository) *OAuthService {
	return &OAuthService{users: users}
}

// FindOrCreateFromClaims resolves normalized identity claims to a local user:
// first by the provider's subject id, then by email (linking the provider id
// to the existing account), and finally by creating a password-less account
// with a generated username.
func (service *OAuthService) FindOrCreateFromClaims(claims IdentityClaims) (models.User, error) {
	if claims.SubjectID == "" {
		return models.User{}, ErrOAuthSubjectMissing
	}

	user, err := service.users.FindByProviderID(claims.Provider, claims.SubjectID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	if claims.Email == "" {
		return models.User{}, ErrOAuthEmailMissing
	}

	user, err = service.users.FindByNormalizedEmail(claims.Email)
	if err == nil {
		if user.ProviderID(claims.Provider) == nil {
			user.SetProviderID(claims.Provider, claims.SubjectID)
			if saveErr := service.users.Save(&user); saveErr != nil {
				return models.User{}, saveErr
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	username, err := service.generateUsername(claims.UsernameBase)
	if err != nil {
		return models.User{}, err
	}

	user = models.User{
		PublicID:     uuid.NewString(),
		Email:        claims.Email,
		Username:     username,
		PasswordHash: "",
		DisplayName:  claims.DisplayName,
		AvatarURL:    claims.AvatarURL,
		Provider:     claims.Provider,
		Role:         models.RoleStudent,
		Points:       0,
		Level:        1,
	}
	user.SetProviderID(claims.Provider, claims.SubjectID)
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *OAuthService) generateUsername(base string) (string, error) {
	if base == "" {
		base = "user"
	}

	// A 4-character suffix collides rarely; retry a handful of times before
	// giving up with the storage error.
	for attempt := 0; attempt < 5; attempt++ {
		suffix, err := security.RandomSuffix(usernameSuffixLength)
		if err != nil {
			return "", err
		}
		candidate := base + "_" + suffix
		taken, err := service.users.ExistsByUsername(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate a unique username")
}
