package workout

import "strings"

// Muscle groups that define each workout classification.
//
//nolint:gochecknoglobals // immutable classification sets, safe for concurrent reads.
var (
	pushMuscles = []string{"chest", "shoulders", "triceps"}
	pullMuscles = []string{"back", "biceps", "rear_delts"}
	legMuscles  = []string{"quads", "hamstrings", "glutes", "calves"}
)

// classifyWorkout derives the workout type from the targeted muscles.
func classifyWorkout(targetMuscles []string) Type {
	isPush := intersects(targetMuscles, pushMuscles)
	isPull := intersects(targetMuscles, pullMuscles)
	isLegs := intersects(targetMuscles, legMuscles)

	switch {
	case isPush && !isPull && !isLegs:
		return TypePush
	case isPull && !isPush && !isLegs:
		return TypePull
	case isLegs && !isPush && !isPull:
		return TypeLegs
	case (isPush || isPull) && !isLegs:
		return TypeUpper
	case isLegs && !(isPush && isPull):
		return TypeLower
	default:
		return TypeFullBody
	}
}

// intersects reports whether the two sets share at least one element.
func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}

// levelPrefixes and typeNames build display names for generated workouts.
//
//nolint:gochecknoglobals // immutable naming tables.
var (
	levelPrefixes = map[ExperienceLevel]string{
		ExperienceBeginner:     "Foundation",
		ExperienceIntermediate: "Progressive",
		ExperienceAdvanced:     "Intense",
	}
	typeNames = map[Type]string{
		TypePush:     "Push Power",
		TypePull:     "Pull Strength",
		TypeLegs:     "Leg Day",
		TypeUpper:    "Upper Body",
		TypeLower:    "Lower Body",
		TypeFullBody: "Full Body Blast",
	}
)

// workoutName combines a level prefix with the workout type name, e.g.
// "Progressive Push Power".
func workoutName(workoutType Type, level ExperienceLevel) string {
	return strings.TrimSpace(levelPrefixes[level] + " " + typeNames[workoutType])
}
