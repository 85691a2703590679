package services

import (
	"testing"

	"github.com/markbates/goth"
	"github.com/noesis-app/noesis/internal/models"
)

func TestNormalizeProviderProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile goth.User
		want    IdentityClaims
	}{
		{
			name: "nickname wins over name",
			profile: goth.User{
				UserID:    "g-123",
				Email:     " Person@Example.COM ",
				NickName:  "Cool.Person",
				Name:      "Cool Person",
				AvatarURL: "https://example.com/p.png",
			},
			want: IdentityClaims{
				Provider:     models.ProviderGoogle,
				SubjectID:    "g-123",
				Email:        "person@example.com",
				UsernameBase: "cool_person",
				DisplayName:  "Cool Person",
				AvatarURL:    "https://example.com/p.png",
			},
		},
		{
			name: "falls back to email local part",
			profile: goth.User{
				UserID: "d-9",
				Email:  "someone@example.com",
			},
			want: IdentityClaims{
				Provider:     models.ProviderDiscord,
				SubjectID:    "d-9",
				Email:        "someone@example.com",
				UsernameBase: "someone",
			},
		},
		{
			name:    "empty profile gets generic base",
			profile: goth.User{UserID: "x-1"},
			want: IdentityClaims{
				Provider:     models.ProviderGitHub,
				SubjectID:    "x-1",
				UsernameBase: "user",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := NormalizeProviderProfile(testCase.want.Provider, testCase.profile)
			if got != testCase.want {
				t.Fatalf("NormalizeProviderProfile mismatch:\n got %+v\nwant %+v", got, testCase.want)
			}
		})
	}
}
