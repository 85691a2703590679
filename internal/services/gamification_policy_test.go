package services

import (
	"testing"
	"time"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   int
	}{
		{name: "zero points is level one", points: 0, want: 1},
		{name: "just below first threshold", points: 99, want: 1},
		{name: "first threshold", points: 100, want: 2},
		{name: "mid second level", points: 150, want: 2},
		{name: "several levels", points: 450, want: 5},
		{name: "negative clamps to level one", points: -20, want: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := LevelForPoints(testCase.points); got != testCase.want {
				t.Fatalf("LevelForPoints(%d) = %d, want %d", testCase.points, got, testCase.want)
			}
		})
	}
}

func TestSameCalendarDay(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	morning := time.Date(2026, time.March, 10, 0, 15, 0, 0, location)
	night := time.Date(2026, time.March, 10, 23, 50, 0, 0, location)
	nextDay := time.Date(2026, time.March, 11, 0, 5, 0, 0, location)

	if !SameCalendarDay(morning, night, location) {
		t.Fatal("expected same day for timestamps within one calendar day")
	}
	if SameCalendarDay(night, nextDay, location) {
		t.Fatal("expected different days across midnight")
	}

	// The boundary depends on the location, not on UTC.
	utcEvening := time.Date(2026, time.March, 10, 22, 30, 0, 0, time.UTC)
	if SameCalendarDay(night, utcEvening, location) {
		t.Fatal("expected 22:30 UTC to fall on the next Moscow day")
	}
}

func TestDayBounds(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	afternoon := time.Date(2026, time.March, 10, 14, 30, 0, 0, location)
	start, end := DayBounds(afternoon, location)

	expectedStart := time.Date(2026, time.March, 10, 0, 0, 0, 0, location)
	expectedEnd := time.Date(2026, time.March, 11, 0, 0, 0, 0, location)
	if !start.Equal(expectedStart) {
		t.Fatalf("expected start %s, got %s", expectedStart.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if !end.Equal(expectedEnd) {
		t.Fatalf("expected end %s, got %s", expectedEnd.Format(time.RFC3339), end.Format(time.RFC3339))
	}
}
