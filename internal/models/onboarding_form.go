package models

import "time"

const (
	FocusProductivity = "productivity"
	FocusFitness      = "fitness"
	FocusSleep        = "sleep"
	FocusFocus        = "focus"
	FocusMentalHealth = "mental_health"
	FocusAllRound     = "all_round"
)

const (
	ConsistencyVeryInconsistent   = "very_inconsistent"
	ConsistencySomewhatConsistent = "somewhat_consistent"
	ConsistencyMostlyConsistent   = "mostly_consistent"
)

// OnboardingForm captures the one-time questionnaire that seeds habit
// suggestions. At most one form exists per user and it is never updated
// after creation.
type OnboardingForm struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	UserID            uint      `gorm:"not null;uniqueIndex" json:"-"`
	Role              string    `gorm:"not null" json:"role"`
	WakeUpTime        string    `json:"wakeUpTime,omitempty"`
	SleepInconsistent bool      `gorm:"not null;default:false" json:"sleepInconsistent"`
	CurrentHabits     []string  `gorm:"serializer:json" json:"currentHabits"`
	ConsistencyLevel  string    `json:"consistencyLevel,omitempty"`
	DailyFreeTime     string    `json:"dailyFreeTime,omitempty"`
	FocusArea         string    `gorm:"not null" json:"focusArea"`
	Blockers          []string  `gorm:"serializer:json" json:"blockers"`
	ExtraInfo         string    `json:"extraInfo,omitempty"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

func OnboardingRoles() []string {
	return []string{"student", "college_student", "professional", "freelancer", "other"}
}

func FocusAreas() []string {
	return []string{FocusProductivity, FocusFitness, FocusSleep, FocusFocus, FocusMentalHealth, FocusAllRound}
}

func ConsistencyLevels() []string {
	return []string{ConsistencyVeryInconsistent, ConsistencySomewhatConsistent, ConsistencyMostlyConsistent}
}

func DailyFreeTimeOptions() []string {
	return []string{"15-30", "30-60", "60-120", "120+"}
}
