package db

import "gorm.io/gorm"

type Repositories struct {
	Users  *UserRepository
	Habits *HabitRepository
	Tasks  *PlannerTaskRepository
	Forms  *OnboardingFormRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(database),
		Habits: NewHabitRepository(database),
		Tasks:  NewPlannerTaskRepository(database),
		Forms:  NewOnboardingFormRepository(database),
	}
}
