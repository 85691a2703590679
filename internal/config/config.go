package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// OAuthProvider holds the client credentials for one external login provider.
// A provider with an empty ClientID is not registered.
type OAuthProvider struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// OpenRouter configures the habit suggestion client. An empty APIKey makes
// every generation request fall back to the static habit tables.
type OpenRouter struct {
	APIKey  string
	Model   string
	Referer string
	BaseURL string
	Timeout time.Duration
}

type Config struct {
	Port              string
	Env               string
	DBPath            string
	Timezone          string
	JWTSecret         string
	JWTTTL            time.Duration
	SessionSecret     string
	ServerBaseURL     string
	ClientRedirectURL string

	Google  OAuthProvider
	GitHub  OAuthProvider
	Discord OAuthProvider

	OpenRouter OpenRouter
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load reads configuration from the environment. It is called once at startup;
// business logic never reads the environment directly.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		Env:               getEnv("NODE_ENV", "development"),
		DBPath:            getEnv("DB_PATH", filepath.Join("data", "noesis.db")),
		Timezone:          getEnv("TZ", "UTC"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTTTL:            getDurationEnv("JWT_EXPIRES_IN", 30*24*time.Hour),
		SessionSecret:     getEnv("SESSION_SECRET", ""),
		ServerBaseURL:     getEnv("SERVER_BASE_URL", "http://localhost:3000"),
		ClientRedirectURL: os.Getenv("CLIENT_REDIRECT_URI"),
		OpenRouter: OpenRouter{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			Model:   getEnv("OPENROUTER_MODEL", "meta-llama/llama-3.2-3b-instruct:free"),
			Referer: getEnv("OPENROUTER_HTTP_REFERER", "http://localhost:3000"),
			BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Timeout: getDurationEnv("OPENROUTER_TIMEOUT", 30*time.Second),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = cfg.JWTSecret
	}

	cfg.Google = loadProvider("GOOGLE", cfg.ServerBaseURL+"/users/auth/google/callback")
	cfg.GitHub = loadProvider("GITHUB", cfg.ServerBaseURL+"/users/auth/github/callback")
	cfg.Discord = loadProvider("DISCORD", cfg.ServerBaseURL+"/users/auth/discord/callback")

	return cfg, nil
}

func (cfg *Config) IsProduction() bool {
	return cfg.Env == "production"
}

func loadProvider(prefix string, defaultCallback string) OAuthProvider {
	return OAuthProvider{
		ClientID:     os.Getenv(prefix + "_CLIENT_ID"),
		ClientSecret: os.Getenv(prefix + "_CLIENT_SECRET"),
		CallbackURL:  getEnv(prefix+"_CALLBACK_URL", getEnv(prefix+"_REDIRECT_URI", defaultCallback)),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
