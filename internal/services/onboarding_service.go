package services

import (
	"context"
	"errors"
	"log"

	"github.com/noesis-app/noesis/internal/models"
	"github.com/noesis-app/noesis/internal/suggest"
	"gorm.io/gorm"
)

var (
	ErrOnboardingAlreadySubmitted = errors.New("onboarding form already submitted")
	ErrOnboardingFormNotFound     = errors.New("onboarding form not found")
)

type OnboardingFormRepository interface {
	FindByUser(userID uint) (models.OnboardingForm, error)
	ExistsForUser(userID uint) (bool, error)
	Create(form *models.OnboardingForm) error
}

type OnboardingUserRepository interface {
	UpdateByID(userID uint, updates map[string]any) error
}

type OnboardingHabitRepository interface {
	CreateBatch(habits []models.Habit) ([]models.Habit, error)
}

// SuggestionGenerator produces a habit batch for onboarding answers. The
// generator itself never fails; Result.Source records whether the batch came
// from the model or from the static fallback tables.
type SuggestionGenerator interface {
	Generate(ctx context.Context, answers suggest.Answers) suggest.Result
}

type OnboardingService struct {
	forms     OnboardingFormRepository
	users     OnboardingUserRepository
	habits    OnboardingHabitRepository
	generator SuggestionGenerator
}

func NewOnboardingService(forms OnboardingFormRepository, users OnboardingUserRepository, habits OnboardingHabitRepository, generator SuggestionGenerator) *OnboardingService {
	return &OnboardingService{forms: forms, users: users, habits: habits, generator: generator}
}

// SubmitOutcome carries the persisted form plus the seeded habit batch. When
// persisting the batch fails after the form was already saved, Warning is set
// and Habits stays empty; the submission itself still succeeds.
type SubmitOutcome struct {
	Form    models.OnboardingForm
	Habits  []models.Habit
	Source  suggest.Source
	Warning string
}

// Submit persists the one-time questionnaire, flags the user as onboarded and
// seeds the user's habit list from the suggestion generator.
func (service *OnboardingService) Submit(ctx context.Context, userID uint, input OnboardingInput) (SubmitOutcome, error) {
	if err := ValidateOnboardingInput(&input); err != nil {
		return SubmitOutcome{}, err
	}

	exists, err := service.forms.ExistsForUser(userID)
	if err != nil {
		return SubmitOutcome{}, err
	}
	if exists {
		return SubmitOutcome{}, ErrOnboardingAlreadySubmitted
	}

	form := models.OnboardingForm{
		UserID:            userID,
		Role:              input.Role,
		WakeUpTime:        input.WakeUpTime,
		SleepInconsistent: input.SleepInconsistent,
		CurrentHabits:     input.CurrentHabits,
		ConsistencyLevel:  input.ConsistencyLevel,
		DailyFreeTime:     input.DailyFreeTime,
		FocusArea:         input.FocusArea,
		Blockers:          input.Blockers,
		ExtraInfo:         input.ExtraInfo,
	}
	if err := service.forms.Create(&form); err != nil {
		return SubmitOutcome{}, err
	}

	if err := service.users.UpdateByID(userID, map[string]any{"filled_form": true}); err != nil {
		return SubmitOutcome{}, err
	}

	outcome := SubmitOutcome{Form: form}

	result := service.generator.Generate(ctx, suggest.Answers{
		Role:             form.Role,
		DailyFreeTime:    form.DailyFreeTime,
		CurrentHabits:    form.CurrentHabits,
		FocusArea:        form.FocusArea,
		ConsistencyLevel: form.ConsistencyLevel,
	})

	batch := make([]models.Habit, 0, len(result.Habits))
	for _, suggestion := range result.Habits {
		batch = append(batch, models.Habit{
			UserID:      userID,
			Title:       suggestion.Title,
			Description: suggestion.Description,
			Schedule:    suggestion.Schedule,
			Points:      models.DefaultHabitPoints,
			IsActive:    true,
		})
	}

	saved, err := service.habits.CreateBatch(batch)
	if err != nil {
		// The form is already committed; surface a warning instead of
		// failing the whole submission.
		log.Printf("onboarding habit batch for user %d not saved: %v", userID, err)
		outcome.Warning = "Habit generation failed, but form was saved"
		return outcome, nil
	}

	outcome.Habits = saved
	outcome.Source = result.Source
	return outcome, nil
}

// Fetch returns the user's onboarding form.
func (service *OnboardingService) Fetch(userID uint) (models.OnboardingForm, error) {
	form, err := service.forms.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.OnboardingForm{}, ErrOnboardingFormNotFound
		}
		return models.OnboardingForm{}, err
	}
	return form, nil
}
