// Package suggest turns onboarding answers into habit suggestions. It asks an
// OpenRouter-hosted model first and falls back to static, deterministic habit
// tables when the upstream call fails in any way. Callers can tell the two
// apart through Result.Source.
package suggest

const (
	minSuggestions = 5
	maxSuggestions = 7
)

const (
	defaultTitle       = "New Habit"
	defaultDescription = "A habit to improve your daily routine"
	defaultSchedule    = "daily"
)

type Habit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
}

// Source records where a suggestion batch came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

type Result struct {
	Habits []Habit
	Source Source
}

// Answers carries the onboarding fields that shape the prompt. Empty fields
// get the same defaults the prompt and fallback tables assume.
type Answers struct {
	Role             string
	DailyFreeTime    string
	CurrentHabits    []string
	FocusArea        string
	ConsistencyLevel string
}

func (answers Answers) roleOrDefault() string {
	if answers.Role == "" {
		return "student"
	}
	return answers.Role
}

func (answers Answers) freeTimeOrDefault() string {
	if answers.DailyFreeTime == "" {
		return "30-60"
	}
	return answers.DailyFreeTime
}

func (answers Answers) focusAreaOrDefault() string {
	if answers.FocusArea == "" {
		return "all_round"
	}
	return answers.FocusArea
}

func (answers Answers) consistencyOrDefault() string {
	if answers.ConsistencyLevel == "" {
		return "somewhat_consistent"
	}
	return answers.ConsistencyLevel
}
