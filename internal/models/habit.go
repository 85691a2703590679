package models

import "time"

const (
	ScheduleDaily  = "daily"
	ScheduleWeekly = "weekly"
	ScheduleCustom = "custom"
)

// DefaultHabitPoints is awarded per completion when a habit has no explicit value.
const DefaultHabitPoints = 10

type Habit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_habits_user_active" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Schedule    string    `gorm:"not null;default:daily" json:"schedule"`
	Points      int       `gorm:"not null;default:10" json:"points"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_habits_user_active" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsValidSchedule(schedule string) bool {
	switch schedule {
	case ScheduleDaily, ScheduleWeekly, ScheduleCustom:
		return true
	default:
		return false
	}
}
