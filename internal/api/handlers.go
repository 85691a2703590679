package api

import (
	"time"

	"github.com/noesis-app/noesis/internal/config"
	"github.com/noesis-app/noesis/internal/db"
	"github.com/noesis-app/noesis/internal/services"
	"github.com/noesis-app/noesis/internal/suggest"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, cfg *config.Config, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	tokenTTL := cfg.JWTTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultAuthTokenTTL
	}

	repos := db.NewRepositories(database)
	generator := suggest.NewClient(suggest.ClientConfig{
		APIKey:  cfg.OpenRouter.APIKey,
		Model:   cfg.OpenRouter.Model,
		BaseURL: cfg.OpenRouter.BaseURL,
		Referer: cfg.OpenRouter.Referer,
		Timeout: cfg.OpenRouter.Timeout,
	})

	return &Handler{
		db:                database,
		secretKey:         []byte(cfg.JWTSecret),
		tokenTTL:          tokenTTL,
		location:          location,
		clientRedirectURL: cfg.ClientRedirectURL,

		authService:         services.NewAuthService(repos.Users),
		oauthService:        services.NewOAuthService(repos.Users),
		gamificationService: services.NewGamificationService(repos.Users, repos.Habits, location),
		onboardingService:   services.NewOnboardingService(repos.Forms, repos.Users, repos.Habits, generator),
		habitService:        services.NewHabitService(repos.Habits),
		plannerService:      services.NewPlannerService(repos.Tasks, location),
	}
}
