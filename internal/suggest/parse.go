package suggest

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNoSuggestions = errors.New("model returned no usable suggestions")

// decodeSuggestions parses the model's reply into habit suggestions. Models
// routinely wrap the requested JSON array in prose, so the first
// bracket-delimited substring is extracted before parsing; if no brackets are
// found the whole reply is tried as-is.
func decodeSuggestions(content string) ([]Habit, error) {
	candidate := extractArray(content)

	var habits []Habit
	if err := json.Unmarshal([]byte(candidate), &habits); err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, errNoSuggestions
	}
	return habits, nil
}

func extractArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return content
	}
	return content[start : end+1]
}

// normalizeSuggestions fills missing fields with defaults, caps the batch at
// seven entries and pads with a generic focus-area habit until it holds at
// least five.
func normalizeSuggestions(habits []Habit, focusArea string) []Habit {
	if len(habits) > maxSuggestions {
		habits = habits[:maxSuggestions]
	}

	normalized := make([]Habit, 0, maxSuggestions)
	for _, habit := range habits {
		if habit.Title == "" {
			habit.Title = defaultTitle
		}
		if habit.Description == "" {
			habit.Description = defaultDescription
		}
		if habit.Schedule == "" {
			habit.Schedule = defaultSchedule
		}
		normalized = append(normalized, habit)
	}

	for len(normalized) < minSuggestions {
		normalized = append(normalized, Habit{
			Title:       "Focus on " + focusArea,
			Description: "A simple daily practice to improve your " + focusArea,
			Schedule:    defaultSchedule,
		})
	}

	if len(normalized) > maxSuggestions {
		normalized = normalized[:maxSuggestions]
	}
	return normalized
}
