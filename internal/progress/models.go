// Package progress aggregates workout history into streaks, calendar
// summaries, and personal records.
package progress

import (
	"time"

	"github.com/google/uuid"
)

// SessionRecord is one historical workout session. Only sessions with a
// non-nil completion timestamp count toward streaks and the calendar.
type SessionRecord struct {
	ID          uuid.UUID
	CompletedAt *time.Time
	// TotalVolumeKg is the sum of weight x reps across all sets.
	TotalVolumeKg float64
	ExerciseCount int
}

// PersonalRecord is a best historical performance for an exercise.
type PersonalRecord struct {
	ID           int
	ExerciseName string
	WeightKg     float64
	Reps         int
	// Estimated1RM is derived from WeightKg and Reps with the Epley formula.
	Estimated1RM float64
	AchievedAt   time.Time
}

// Summary holds the streak and recent-activity statistics for a user.
type Summary struct {
	CurrentStreak int
	LongestStreak int
	// LastWorkoutDate is the zero time when there are no completed sessions.
	LastWorkoutDate time.Time
	// DaysSinceLastWorkout is -1 when there are no completed sessions.
	DaysSinceLastWorkout int
	ThisWeekWorkouts     int
	ThisMonthWorkouts    int
}

// DayAggregate collects the activity of a single calendar date. Dates with
// no sessions are absent from the calendar map; synthesizing a dense grid is
// a presentation concern.
type DayAggregate struct {
	WorkoutCount  int
	TotalVolumeKg float64
	ExerciseCount int
	HasPR         bool
	SessionIDs    []uuid.UUID
}

// dateOf truncates a timestamp to its calendar date, keeping the timestamp's
// location. Callers convert into the reference location first.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
