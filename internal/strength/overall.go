package strength

import (
	"github.com/kaseltech/ironvow-sub001/internal/workout"
)

// PR is a personal record supplied by the caller: the best estimated one-rep
// max for a named exercise.
type PR struct {
	ExerciseName string
	OneRepMax    float64
}

// LiftScore is the per-lift breakdown within an Assessment. Expected and
// Actual are 0 when no matching PR was found.
type LiftScore struct {
	Lift     string
	Score    int
	Expected float64
	Actual   float64
}

// Assessment summarizes a lifter's standing across the four major lifts.
type Assessment struct {
	OverallScore int
	Level        string
	LiftScores   []LiftScore
}

// majorLifts are the lifts that feed the overall assessment.
//
//nolint:gochecknoglobals // immutable reference data.
var majorLifts = []string{"Squat", "Bench Press", "Deadlift", "Overhead Press"}

// Overall level bands.
const (
	bandAdvanced     = 80
	bandIntermediate = 60
	bandBeginner     = 40
)

// OverallLevel scores the supplied PRs against the four major lifts and
// derives an overall strength level. Lifts without a matching PR score 0 and
// are excluded from the overall average; when no lift has data the overall
// score is 0.
func OverallLevel(prs []PR, bodyweightKg float64, level workout.ExperienceLevel, gender Gender) Assessment {
	liftScores := make([]LiftScore, 0, len(majorLifts))
	total := 0
	withData := 0

	for _, lift := range majorLifts {
		actual := bestMatchingPR(prs, lift)

		score := 0
		if actual > 0 {
			score = Score(actual, lift, bodyweightKg, level, gender)
			total += score
			withData++
		}

		expected, _ := Expected1RM(lift, bodyweightKg, level, gender)
		liftScores = append(liftScores, LiftScore{
			Lift:     lift,
			Score:    score,
			Expected: expected,
			Actual:   actual,
		})
	}

	overall := 0
	if withData > 0 {
		overall = total / withData
	}

	return Assessment{
		OverallScore: overall,
		Level:        levelForScore(overall),
		LiftScores:   liftScores,
	}
}

// bestMatchingPR returns the highest one-rep max among the PRs that resolve
// to the given lift, or 0 when none match.
func bestMatchingPR(prs []PR, lift string) float64 {
	target := FindStandardForExercise(lift)
	if target == nil {
		return 0
	}

	best := 0.0
	for _, pr := range prs {
		standard := FindStandardForExercise(pr.ExerciseName)
		if standard == nil || standard.Slug != target.Slug {
			continue
		}
		if pr.OneRepMax > best {
			best = pr.OneRepMax
		}
	}
	return best
}

// levelForScore maps an overall score to its display label.
func levelForScore(score int) string {
	switch {
	case score >= bandAdvanced:
		return "Advanced"
	case score >= bandIntermediate:
		return "Intermediate"
	case score >= bandBeginner:
		return "Beginner"
	default:
		return "Developing"
	}
}
