package api

import (
	"time"

	"github.com/noesis-app/noesis/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db                *gorm.DB
	secretKey         []byte
	tokenTTL          time.Duration
	location          *time.Location
	clientRedirectURL string

	authService         *services.AuthService
	oauthService        *services.OAuthService
	gamificationService *services.GamificationService
	onboardingService   *services.OnboardingService
	habitService        *services.HabitService
	plannerService      *services.PlannerService
}

type signupInput struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type onboardingInput struct {
	Role              string   `json:"role" form:"role"`
	WakeUpTime        string   `json:"wakeUpTime" form:"wakeUpTime"`
	SleepInconsistent bool     `json:"sleepInconsistent" form:"sleepInconsistent"`
	CurrentHabits     []string `json:"currentHabits" form:"currentHabits"`
	ConsistencyLevel  string   `json:"consistencyLevel" form:"consistencyLevel"`
	DailyFreeTime     string   `json:"dailyFreeTime" form:"dailyFreeTime"`
	FocusArea         string   `json:"focusArea" form:"focusArea"`
	Blockers          []string `json:"blockers" form:"blockers"`
	ExtraInfo         string   `json:"extraInfo" form:"extraInfo"`
}

type habitInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Schedule    string `json:"schedule" form:"schedule"`
	Points      int    `json:"points" form:"points"`
}

type taskInput struct {
	Title   string     `json:"title" form:"title"`
	DueDate *time.Time `json:"dueDate" form:"dueDate"`
}

type taskPatchInput struct {
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	DueDate   *time.Time `json:"dueDate"`
}

const defaultAuthTokenTTL = 30 * 24 * time.Hour
