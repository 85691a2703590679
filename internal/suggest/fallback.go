package suggest

var roleFallbacks = map[string][]Habit{
	"student": {
		{Title: "Review Today's Notes", Description: "Spend 10 minutes reviewing what you learned today", Schedule: "daily"},
		{Title: "Morning Planning", Description: "Plan your day in the morning", Schedule: "daily"},
		{Title: "Evening Reflection", Description: "Reflect on your day before bed", Schedule: "daily"},
	},
	"professional": {
		{Title: "Morning Routine", Description: "Start your day with a consistent morning routine", Schedule: "daily"},
		{Title: "Task Prioritization", Description: "Prioritize your top 3 tasks each morning", Schedule: "daily"},
		{Title: "Evening Wind Down", Description: "Take time to unwind after work", Schedule: "daily"},
	},
}

var focusAreaFallbacks = map[string][]Habit{
	"productivity": {
		{Title: "Time Blocking", Description: "Block time for important tasks", Schedule: "daily"},
		{Title: "Digital Detox", Description: "Take breaks from screens", Schedule: "daily"},
	},
	"fitness": {
		{Title: "Daily Movement", Description: "Get at least 15 minutes of movement", Schedule: "daily"},
		{Title: "Stretch Break", Description: "Take stretching breaks throughout the day", Schedule: "daily"},
	},
	"sleep": {
		{Title: "Consistent Bedtime", Description: "Go to bed at the same time each night", Schedule: "daily"},
		{Title: "No Screens Before Bed", Description: "Avoid screens 30 minutes before sleep", Schedule: "daily"},
	},
	"focus": {
		{Title: "Deep Work Session", Description: "Dedicate time for focused work", Schedule: "daily"},
		{Title: "Mindfulness Practice", Description: "Practice 5 minutes of mindfulness", Schedule: "daily"},
	},
	"mental_health": {
		{Title: "Gratitude Journal", Description: "Write down 3 things you're grateful for", Schedule: "daily"},
		{Title: "Breathing Exercise", Description: "Practice deep breathing exercises", Schedule: "daily"},
	},
	"all_round": {
		{Title: "Daily Reflection", Description: "Reflect on your day", Schedule: "daily"},
		{Title: "Small Win Celebration", Description: "Celebrate one small win each day", Schedule: "daily"},
	},
}

// FallbackHabits returns the static suggestion set for a role and focus area.
// The output is deterministic: the same inputs always produce the same ordered
// titles, with duplicates removed first-occurrence-wins and at most seven
// entries. Unknown roles use the student set, unknown focus areas all_round.
func FallbackHabits(role string, focusArea string) []Habit {
	base, ok := roleFallbacks[role]
	if !ok {
		base = roleFallbacks["student"]
	}
	focused, ok := focusAreaFallbacks[focusArea]
	if !ok {
		focused = focusAreaFallbacks["all_round"]
	}

	combined := make([]Habit, 0, len(base)+len(focused))
	combined = append(combined, base...)
	combined = append(combined, focused...)

	seen := make(map[string]bool, len(combined))
	unique := make([]Habit, 0, len(combined))
	for _, habit := range combined {
		if seen[habit.Title] {
			continue
		}
		seen[habit.Title] = true
		unique = append(unique, habit)
	}

	if len(unique) > maxSuggestions {
		unique = unique[:maxSuggestions]
	}
	return unique
}
