package api

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/discord"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/noesis-app/noesis/internal/config"
)

// ConfigureOAuthProviders registers the providers that have credentials and
// points gothic at a cookie store keyed with the session secret. Providers
// without credentials are simply absent; their routes answer 404.
func ConfigureOAuthProviders(cfg *config.Config) []string {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	gothic.Store = store

	providers := make([]goth.Provider, 0, 3)
	enabled := make([]string, 0, 3)

	if cfg.Google.ClientID != "" {
		providers = append(providers, google.New(
			cfg.Google.ClientID,
			cfg.Google.ClientSecret,
			cfg.Google.CallbackURL,
			"email",
			"profile",
		))
		enabled = append(enabled, "google")
	}
	if cfg.GitHub.ClientID != "" {
		providers = append(providers, github.New(
			cfg.GitHub.ClientID,
			cfg.GitHub.ClientSecret,
			cfg.GitHub.CallbackURL,
			"user:email",
		))
		enabled = append(enabled, "github")
	}
	if cfg.Discord.ClientID != "" {
		providers = append(providers, discord.New(
			cfg.Discord.ClientID,
			cfg.Discord.ClientSecret,
			cfg.Discord.CallbackURL,
			discord.ScopeIdentify,
			discord.ScopeEmail,
		))
		enabled = append(enabled, "discord")
	}

	goth.UseProviders(providers...)
	return enabled
}
