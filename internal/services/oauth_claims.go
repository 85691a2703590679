package services

import (
	"regexp"
	"strings"

	"github.com/markbates/goth"
)

// IdentityClaims is the provider-neutral shape of an external login profile.
// One pure normalization step replaces per-provider callback objects, so the
// find-or-create path below works identically for every provider.
type IdentityClaims struct {
	Provider     string
	SubjectID    string
	Email        string
	UsernameBase string
	DisplayName  string
	AvatarURL    string
}

var usernameSanitizePattern = regexp.MustCompile(`[^a-z0-9_]`)

// NormalizeProviderProfile flattens a goth profile into identity claims.
// The username base is lowercased with everything outside [a-z0-9_] replaced
// by underscores; a random suffix is appended later to avoid collisions.
func NormalizeProviderProfile(provider string, profile goth.User) IdentityClaims {
	email := strings.ToLower(strings.TrimSpace(profile.Email))

	base := strings.TrimSpace(profile.NickName)
	if base == "" {
		base = strings.TrimSpace(profile.Name)
	}
	if base == "" && email != "" {
		base = strings.SplitN(email, "@", 2)[0]
	}
	if base == "" {
		base = "user"
	}
	base = usernameSanitizePattern.ReplaceAllString(strings.ToLower(base), "_")

	displayName := strings.TrimSpace(profile.Name)
	if displayName == "" {
		displayName = strings.TrimSpace(profile.NickName)
	}

	return IdentityClaims{
		Provider:     provider,
		SubjectID:    profile.UserID,
		Email:        email,
		UsernameBase: base,
		DisplayName:  displayName,
		AvatarURL:    profile.AvatarURL,
	}
}
