// Package strength scores lift performance against bodyweight-multiplier
// strength standards.
package strength

import (
	"math"
	"strings"

	"github.com/kaseltech/ironvow-sub001/internal/workout"
)

// Gender selects which multiplier table applies.
type Gender string

// Gender constants.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Standard describes the expected one-rep max for a lift as a multiple of
// bodyweight per experience level and gender.
type Standard struct {
	// Name is the canonical lift name, e.g. "Bench Press".
	Name string
	// Slug is the canonical identifier, e.g. "bench-press".
	Slug string
	// Aliases are matched as substrings against user-entered exercise
	// names, e.g. "bench" matches "Barbell Bench Press".
	Aliases []string
	// Multipliers maps gender and experience level to the bodyweight
	// multiple expected at that level.
	Multipliers map[Gender]map[workout.ExperienceLevel]float64
}

// standards is the static configuration table. It is never mutated at
// runtime and is safe for concurrent reads. Declaration order matters for
// FindStandardForExercise: the first matching entry wins.
//
//nolint:gochecknoglobals // immutable reference data.
var standards = []Standard{
	{
		Name:    "Squat",
		Slug:    "squat",
		Aliases: []string{"squat", "back squat", "front squat"},
		Multipliers: map[Gender]map[workout.ExperienceLevel]float64{
			GenderMale: {
				workout.ExperienceBeginner:     0.75,
				workout.ExperienceIntermediate: 1.25,
				workout.ExperienceAdvanced:     1.75,
			},
			GenderFemale: {
				workout.ExperienceBeginner:     0.5,
				workout.ExperienceIntermediate: 1.0,
				workout.ExperienceAdvanced:     1.5,
			},
		},
	},
	{
		Name:    "Bench Press",
		Slug:    "bench-press",
		Aliases: []string{"bench press", "bench", "chest press"},
		Multipliers: map[Gender]map[workout.ExperienceLevel]float64{
			GenderMale: {
				workout.ExperienceBeginner:     0.5,
				workout.ExperienceIntermediate: 1.0,
				workout.ExperienceAdvanced:     1.5,
			},
			GenderFemale: {
				workout.ExperienceBeginner:     0.35,
				workout.ExperienceIntermediate: 0.65,
				workout.ExperienceAdvanced:     1.0,
			},
		},
	},
	{
		Name:    "Deadlift",
		Slug:    "deadlift",
		Aliases: []string{"deadlift", "conventional deadlift", "sumo deadlift"},
		Multipliers: map[Gender]map[workout.ExperienceLevel]float64{
			GenderMale: {
				workout.ExperienceBeginner:     1.0,
				workout.ExperienceIntermediate: 1.5,
				workout.ExperienceAdvanced:     2.25,
			},
			GenderFemale: {
				workout.ExperienceBeginner:     0.75,
				workout.ExperienceIntermediate: 1.25,
				workout.ExperienceAdvanced:     1.75,
			},
		},
	},
	{
		Name:    "Overhead Press",
		Slug:    "overhead-press",
		Aliases: []string{"overhead press", "military press", "shoulder press", "ohp"},
		Multipliers: map[Gender]map[workout.ExperienceLevel]float64{
			GenderMale: {
				workout.ExperienceBeginner:     0.35,
				workout.ExperienceIntermediate: 0.65,
				workout.ExperienceAdvanced:     0.95,
			},
			GenderFemale: {
				workout.ExperienceBeginner:     0.25,
				workout.ExperienceIntermediate: 0.45,
				workout.ExperienceAdvanced:     0.7,
			},
		},
	},
}

// Scoring constants. Meeting the expected one-rep max exactly scores 60, and
// every 10% above or below moves the score by 6 points.
const (
	scoreFloorPercent = 50.0
	scoreFloor        = 30.0
	scorePerPercent   = 0.6
	eliteCapFactor    = 1.2
)

// FindStandardForExercise resolves a free-form exercise name to the standard
// it belongs to, or nil when the lift is unrecognized.
//
// Matching is case-insensitive and tries, in order: exact match on the lift
// name, substring match against any alias, then substring match against the
// slug with hyphens replaced by spaces. The first standard to match in
// declaration order wins.
func FindStandardForExercise(name string) *Standard {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	for i := range standards {
		if strings.ToLower(standards[i].Name) == needle {
			return &standards[i]
		}
	}
	for i := range standards {
		for _, alias := range standards[i].Aliases {
			if strings.Contains(needle, strings.ToLower(alias)) {
				return &standards[i]
			}
		}
	}
	for i := range standards {
		slugWords := strings.ReplaceAll(standards[i].Slug, "-", " ")
		if strings.Contains(needle, slugWords) {
			return &standards[i]
		}
	}
	return nil
}

// Expected1RM computes the expected one-rep max for a lift at the given
// bodyweight, experience level, and gender. The second return value is false
// when the lift is unrecognized or the table has no cell for the
// gender/level combination.
func Expected1RM(lift string, bodyweightKg float64, level workout.ExperienceLevel, gender Gender) (float64, bool) {
	standard := FindStandardForExercise(lift)
	if standard == nil {
		return 0, false
	}
	return expectedFromStandard(standard, bodyweightKg, level, gender)
}

func expectedFromStandard(
	standard *Standard,
	bodyweightKg float64,
	level workout.ExperienceLevel,
	gender Gender,
) (float64, bool) {
	byLevel, ok := standard.Multipliers[gender]
	if !ok {
		return 0, false
	}
	multiplier, ok := byLevel[level]
	if !ok {
		return 0, false
	}
	return math.Round(bodyweightKg * multiplier), true
}

// Score rates an actual one-rep max on a 0-100 scale against the expected
// value for the lifter's bodyweight, experience level, and gender.
//
// Unrecognized lifts, non-positive bodyweights, and non-positive actuals
// score 0. Anything at or beyond 120% of the advanced threshold scores 100.
func Score(actual1RM float64, lift string, bodyweightKg float64, level workout.ExperienceLevel, gender Gender) int {
	standard := FindStandardForExercise(lift)
	if standard == nil || bodyweightKg <= 0 {
		return 0
	}
	if actual1RM <= 0 {
		return 0
	}

	byLevel, ok := standard.Multipliers[gender]
	if !ok {
		return 0
	}
	advancedThreshold := bodyweightKg * byLevel[workout.ExperienceAdvanced]
	if advancedThreshold > 0 && actual1RM >= advancedThreshold*eliteCapFactor {
		return 100
	}

	expected, ok := expectedFromStandard(standard, bodyweightKg, level, gender)
	if !ok || expected <= 0 {
		// Unknown experience levels fall back to the intermediate threshold.
		expected, ok = expectedFromStandard(standard, bodyweightKg, workout.ExperienceIntermediate, gender)
		if !ok || expected <= 0 {
			return 0
		}
	}

	percentOfExpected := actual1RM / expected * 100
	score := math.Round(scoreFloor + (percentOfExpected-scoreFloorPercent)*scorePerPercent)
	return clampScore(int(score))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
