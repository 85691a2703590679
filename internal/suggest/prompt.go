package suggest

import (
	"fmt"
	"strings"
)

func buildPrompt(answers Answers) string {
	role := answers.roleOrDefault()
	freeTime := answers.freeTimeOrDefault()
	focusArea := answers.focusAreaOrDefault()
	consistency := answers.consistencyOrDefault()

	existingHabits := "none"
	if len(answers.CurrentHabits) > 0 {
		existingHabits = strings.Join(answers.CurrentHabits, ", ")
	}

	return fmt.Sprintf(`You are a habit coach. Generate 5-7 personalized, simple, and realistic habits for a %[1]s.

User context:
- Role: %[1]s
- Daily free time: %[2]s minutes
- Current habits: %[3]s
- Focus area: %[4]s
- Consistency level: %[5]s

Requirements:
1. Generate exactly 5-7 habits
2. Habits must be simple and realistic for a %[1]s
3. Respect the daily free time of %[2]s minutes
4. Do NOT include any habits from: %[3]s
5. Each habit should be achievable and specific

Return ONLY a valid JSON array of habit objects with this exact structure:
[
  {
    "title": "Habit name (short, 2-4 words)",
    "description": "Brief description (1 sentence)",
    "schedule": "daily"
  },
  ...
]

Do not include any text before or after the JSON array.`,
		role, freeTime, existingHabits, focusArea, consistency)
}
