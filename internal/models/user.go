package models

import "time"

const (
	RoleStudent      = "student"
	RoleProfessional = "professional"
	RoleOther        = "other"
)

const (
	ProviderGoogle  = "google"
	ProviderGitHub  = "github"
	ProviderDiscord = "discord"
)

type User struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	PublicID      string     `gorm:"uniqueIndex;not null" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Username      string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash  string     `json:"-"`
	DisplayName   string     `json:"displayName,omitempty"`
	AvatarURL     string     `json:"profilePicture,omitempty"`
	Provider      string     `json:"provider,omitempty"`
	GoogleID      *string    `gorm:"uniqueIndex" json:"-"`
	GithubID      *string    `gorm:"uniqueIndex" json:"-"`
	DiscordID     *string    `gorm:"uniqueIndex" json:"-"`
	Role          string     `gorm:"not null;default:student" json:"role"`
	FilledForm    bool       `gorm:"not null;default:false" json:"filledForm"`
	Points        int        `gorm:"not null;default:0" json:"points"`
	Level         int        `gorm:"not null;default:1" json:"level"`
	LastLoginDate *time.Time `json:"lastLoginDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ProviderID returns the stored external id for the given provider, if any.
func (user *User) ProviderID(provider string) *string {
	switch provider {
	case ProviderGoogle:
		return user.GoogleID
	case ProviderGitHub:
		return user.GithubID
	case ProviderDiscord:
		return user.DiscordID
	default:
		return nil
	}
}

// SetProviderID links an external provider id to the user.
func (user *User) SetProviderID(provider string, id string) {
	switch provider {
	case ProviderGoogle:
		user.GoogleID = &id
	case ProviderGitHub:
		user.GithubID = &id
	case ProviderDiscord:
		user.DiscordID = &id
	}
}
