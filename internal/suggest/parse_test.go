package suggest

import "testing"

func TestExtractArray(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "array wrapped in prose",
			content: "Sure! Here you go:\n[{\"title\":\"A\"}]\nEnjoy.",
			want:    "[{\"title\":\"A\"}]",
		},
		{
			name:    "bare array untouched",
			content: "[1,2]",
			want:    "[1,2]",
		},
		{
			name:    "no brackets returns input",
			content: "no json here",
			want:    "no json here",
		},
		{
			name:    "reversed brackets return input",
			content: "] broken [",
			want:    "] broken [",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := extractArray(testCase.content); got != testCase.want {
				t.Fatalf("extractArray(%q) = %q, want %q", testCase.content, got, testCase.want)
			}
		})
	}
}

func TestDecodeSuggestions(t *testing.T) {
	habits, err := decodeSuggestions(`Here are your habits: [{"title":"Read","description":"Read a chapter","schedule":"daily"}] hope it helps`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(habits) != 1 || habits[0].Title != "Read" {
		t.Fatalf("unexpected habits %+v", habits)
	}

	if _, err := decodeSuggestions("no array at all"); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
	if _, err := decodeSuggestions("[]"); err == nil {
		t.Fatal("expected error for empty array")
	}
}

func TestNormalizeSuggestions_FillsDefaultsAndPads(t *testing.T) {
	habits := normalizeSuggestions([]Habit{{Title: "Read"}}, "fitness")

	if len(habits) != minSuggestions {
		t.Fatalf("expected padding to %d, got %d", minSuggestions, len(habits))
	}
	if habits[0].Description != defaultDescription || habits[0].Schedule != defaultSchedule {
		t.Fatalf("expected defaults on first habit, got %+v", habits[0])
	}
	if habits[1].Title != "Focus on fitness" {
		t.Fatalf("expected focus-area padding, got %q", habits[1].Title)
	}
}

func TestNormalizeSuggestions_TruncatesToSeven(t *testing.T) {
	oversized := make([]Habit, 10)
	for i := range oversized {
		oversized[i] = Habit{Title: "Habit", Description: "d", Schedule: "daily"}
	}

	habits := normalizeSuggestions(oversized, "focus")
	if len(habits) != maxSuggestions {
		t.Fatalf("expected %d habits, got %d", maxSuggestions, len(habits))
	}
}

func TestNormalizeSuggestions_UntitledEntriesGetDefaultTitle(t *testing.T) {
	habits := normalizeSuggestions([]Habit{
		{Description: "only a description"},
		{Title: "Named", Description: "d", Schedule: "weekly"},
	}, "sleep")

	if habits[0].Title != defaultTitle {
		t.Fatalf("expected default title, got %q", habits[0].Title)
	}
	if habits[1].Schedule != "weekly" {
		t.Fatalf("expected explicit schedule preserved, got %q", habits[1].Schedule)
	}
}
