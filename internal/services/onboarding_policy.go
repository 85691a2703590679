package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noesis-app/noesis/internal/models"
)

var (
	ErrOnboardingRoleRequired      = errors.New("role is required and must be a non-empty string")
	ErrOnboardingFocusAreaRequired = errors.New("focusArea is required and must be a non-empty string")
	ErrValueNotAllowed             = errors.New("value is not allowed")
)

// OnboardingInput is the raw questionnaire submission. Role and focusArea are
// the only required fields; the optional enumerated fields must still come
// from their closed vocabularies when present.
type OnboardingInput struct {
	Role              string
	WakeUpTime        string
	SleepInconsistent bool
	CurrentHabits     []string
	ConsistencyLevel  string
	DailyFreeTime     string
	FocusArea         string
	Blockers          []string
	ExtraInfo         string
}

// ValidateOnboardingInput trims and checks the submission in place.
func ValidateOnboardingInput(input *OnboardingInput) error {
	input.Role = strings.TrimSpace(input.Role)
	if input.Role == "" {
		return ErrOnboardingRoleRequired
	}
	if !containsValue(models.OnboardingRoles(), input.Role) {
		return fmt.Errorf("%w: role %q", ErrValueNotAllowed, input.Role)
	}

	input.FocusArea = strings.TrimSpace(input.FocusArea)
	if input.FocusArea == "" {
		return ErrOnboardingFocusAreaRequired
	}
	if !containsValue(models.FocusAreas(), input.FocusArea) {
		return fmt.Errorf("%w: focusArea %q", ErrValueNotAllowed, input.FocusArea)
	}

	input.ConsistencyLevel = strings.TrimSpace(input.ConsistencyLevel)
	if input.ConsistencyLevel != "" && !containsValue(models.ConsistencyLevels(), input.ConsistencyLevel) {
		return fmt.Errorf("%w: consistencyLevel %q", ErrValueNotAllowed, input.ConsistencyLevel)
	}

	input.DailyFreeTime = strings.TrimSpace(input.DailyFreeTime)
	if input.DailyFreeTime != "" && !containsValue(models.DailyFreeTimeOptions(), input.DailyFreeTime) {
		return fmt.Errorf("%w: dailyFreeTime %q", ErrValueNotAllowed, input.DailyFreeTime)
	}

	if input.CurrentHabits == nil {
		input.CurrentHabits = []string{}
	}
	if input.Blockers == nil {
		input.Blockers = []string{}
	}

	return nil
}

func containsValue(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
