package services

import (
	"errors"
	"time"

	"github.com/noesis-app/noesis/internal/models"
	"gorm.io/gorm"
)

var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrHabitNotActive = errors.New("habit is not active")
	ErrUserNotFound   = errors.New("user not found")
)

type GamificationUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type GamificationHabitRepository interface {
	FindOwned(habitID uint, userID uint) (models.Habit, error)
}

// GamificationService owns the point and level bookkeeping. Award sequences
// are read-then-write without a transaction: concurrent duplicate requests for
// the same user resolve last-write-wins, matching the persistence model the
// rest of the API uses.
type GamificationService struct {
	users    GamificationUserRepository
	habits   GamificationHabitRepository
	location *time.Location
}

func NewGamificationService(users GamificationUserRepository, habits GamificationHabitRepository, location *time.Location) *GamificationService {
	if location == nil {
		location = time.UTC
	}
	return &GamificationService{users: users, habits: habits, location: location}
}

type LoginAward struct {
	Points int
	Level  int
}

// AwardLoginPoints grants the daily login bonus when the user has not logged
// in yet today, then recomputes the level and stamps the login date. Unknown
// users get the zero pair without an error; callers tolerate the silent miss.
func (service *GamificationService) AwardLoginPoints(userID uint) (LoginAward, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginAward{Points: 0, Level: 1}, nil
		}
		return LoginAward{}, err
	}

	now := time.Now().In(service.location)
	if user.LastLoginDate != nil && SameCalendarDay(*user.LastLoginDate, now, service.location) {
		return LoginAward{Points: user.Points, Level: normalizeLevel(user.Level)}, nil
	}

	points := user.Points + LoginBonusPoints
	level := LevelForPoints(points)
	if err := service.users.UpdateByID(userID, map[string]any{
		"points":          points,
		"level":           level,
		"last_login_date": now,
	}); err != nil {
		return LoginAward{}, err
	}

	return LoginAward{Points: points, Level: level}, nil
}

type HabitCompletion struct {
	PointsAwarded int
	TotalPoints   int
	Level         int
}

// CompleteHabit awards the habit's point value to its owner. Completions are
// deliberately repeatable: no completion log prevents a habit from being
// completed twice on the same day.
func (service *GamificationService) CompleteHabit(userID uint, habitID uint) (HabitCompletion, error) {
	habit, err := service.habits.FindOwned(habitID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HabitCompletion{}, ErrHabitNotFound
		}
		return HabitCompletion{}, err
	}
	if !habit.IsActive {
		return HabitCompletion{}, ErrHabitNotActive
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HabitCompletion{}, ErrUserNotFound
		}
		return HabitCompletion{}, err
	}

	awarded := habit.Points
	if awarded <= 0 {
		awarded = models.DefaultHabitPoints
	}
	total := user.Points + awarded
	level := LevelForPoints(total)

	if err := service.users.UpdateByID(userID, map[string]any{
		"points": total,
		"level":  level,
	}); err != nil {
		return HabitCompletion{}, err
	}

	return HabitCompletion{PointsAwarded: awarded, TotalPoints: total, Level: level}, nil
}

func normalizeLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}
