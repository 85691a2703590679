package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/noesis-app/noesis/internal/models"
)

var (
	ErrSignupFieldsRequired = errors.New("email, username and password are required")
	ErrLoginFieldsRequired  = errors.New("email and password are required")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeSignupInput(emailRaw string, usernameRaw string, passwordRaw string) (string, string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	username := strings.TrimSpace(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || username == "" || password == "" {
		return "", "", "", ErrSignupFieldsRequired
	}
	return email, username, password, nil
}

func NormalizeLoginInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrLoginFieldsRequired
	}
	return email, password, nil
}

// NormalizeSignupRole maps free-form role input to the closed user role
// vocabulary, defaulting to student.
func NormalizeSignupRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.RoleProfessional:
		return models.RoleProfessional
	case models.RoleOther:
		return models.RoleOther
	default:
		return models.RoleStudent
	}
}
