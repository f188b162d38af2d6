package workout

import (
	"strings"
)

// Equipment tags that never require anything to be available.
const (
	equipmentTagNone       = "none"
	equipmentTagBodyweight = "bodyweight"
)

// filterExercises returns the subset of the pool admissible under the request
// constraints. An exercise is admissible when it targets at least one
// requested muscle, its equipment is satisfiable at the request's location,
// its difficulty suits the experience level, and it does not conflict with
// any active injury.
//
// The function is pure and returns an empty slice when nothing qualifies;
// callers handle that via the exemplar fallback.
func filterExercises(pool []Exercise, req Request) []Exercise {
	filtered := make([]Exercise, 0, len(pool))
	for _, ex := range pool {
		if !targetsRequestedMuscle(ex, req.TargetMuscles) {
			continue
		}
		if !equipmentSatisfied(ex, req.Location, req.Equipment) {
			continue
		}
		if !difficultyAppropriate(ex, req.Experience) {
			continue
		}
		if conflictsWithInjury(ex, req.Injuries) {
			continue
		}
		filtered = append(filtered, ex)
	}
	return filtered
}

// targetsRequestedMuscle reports whether the exercise hits at least one of the
// requested muscles, in either its primary or secondary muscle set.
func targetsRequestedMuscle(ex Exercise, targetMuscles []string) bool {
	for _, target := range targetMuscles {
		for _, muscle := range ex.PrimaryMuscles {
			if muscle == target {
				return true
			}
		}
		for _, muscle := range ex.SecondaryMuscles {
			if muscle == target {
				return true
			}
		}
	}
	return false
}

// equipmentSatisfied reports whether all required equipment is available.
// A gym is assumed fully equipped. The "none" and "bodyweight" tags are
// always satisfied.
func equipmentSatisfied(ex Exercise, location Location, available []string) bool {
	if location == LocationGym {
		return true
	}
	for _, required := range ex.EquipmentRequired {
		if required == equipmentTagNone || required == equipmentTagBodyweight {
			continue
		}
		if !containsString(available, required) {
			return false
		}
	}
	return true
}

// difficultyAppropriate reports whether the exercise difficulty suits the
// experience level. Beginners are kept away from advanced exercises;
// everyone else can do anything. Exercises without a difficulty tag always
// pass.
func difficultyAppropriate(ex Exercise, level ExperienceLevel) bool {
	if level != ExperienceBeginner {
		return true
	}
	return ex.Difficulty != string(ExperienceAdvanced)
}

// conflictsWithInjury reports whether any injury's avoid-movement list
// matches the exercise by case-insensitive substring against its name or
// movement pattern.
func conflictsWithInjury(ex Exercise, injuries []Injury) bool {
	name := strings.ToLower(ex.Name)
	pattern := strings.ToLower(ex.MovementPattern)
	for _, injury := range injuries {
		for _, movement := range injury.AvoidMovements {
			needle := strings.ToLower(movement)
			if needle == "" {
				continue
			}
			if strings.Contains(name, needle) {
				return true
			}
			if pattern != "" && strings.Contains(pattern, needle) {
				return true
			}
		}
	}
	return false
}

// containsString reports whether s is present in values.
func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
