package services

import "time"

const (
	// LoginBonusPoints is granted once per calendar day on login.
	LoginBonusPoints = 5

	// PointsPerLevel is the width of one gamification tier.
	PointsPerLevel = 100
)

// LevelForPoints derives the level from cumulative points: one tier per full
// hundred points, starting at level 1 for zero points. The curve is monotonic
// and no operation ever subtracts points.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// DateAtLocation truncates a timestamp to midnight in the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	local := value.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}

// SameCalendarDay reports whether two timestamps fall on the same day in the
// given location.
func SameCalendarDay(a time.Time, b time.Time, location *time.Location) bool {
	return DateAtLocation(a, location).Equal(DateAtLocation(b, location))
}
