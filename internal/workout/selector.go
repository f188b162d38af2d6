package workout

import (
	"math"
	"sort"
)

// Exercise selection constants.
const (
	// MinutesPerExercise is the time budget that one exercise with its rest
	// periods occupies in a session.
	MinutesPerExercise = 8
	// MaxExercisesPerWorkout caps the session length regardless of duration.
	MaxExercisesPerWorkout = 8
	// CompoundShare is the target share of compound movements in a session.
	// Compounds receive the ceiling of the split.
	CompoundShare = 0.6
)

// exerciseCountForDuration derives the exercise budget from the session
// duration in minutes.
func exerciseCountForDuration(durationMinutes int) int {
	count := durationMinutes / MinutesPerExercise
	if count > MaxExercisesPerWorkout {
		count = MaxExercisesPerWorkout
	}
	return count
}

// selectExercises picks and orders up to count exercises from the admissible
// pool. The pool is partitioned into compound and isolation movements, each
// partition is sorted by descending relevance to the target muscles (stable,
// preserving catalog order on ties), and the session is assembled compounds
// first.
//
// When one partition is smaller than its quota the shortfall is not
// backfilled from the other, so the result may hold fewer than count
// exercises even when the pool is large enough.
func selectExercises(admissible []Exercise, targetMuscles []string, count int) []Exercise {
	if count <= 0 {
		return []Exercise{}
	}

	var compounds, isolations []Exercise
	for _, ex := range admissible {
		if ex.IsCompound {
			compounds = append(compounds, ex)
		} else {
			isolations = append(isolations, ex)
		}
	}

	sortByRelevance(compounds, targetMuscles)
	sortByRelevance(isolations, targetMuscles)

	// The quotas are fixed by the 60/40 split. A short partition keeps its
	// own quota unfilled rather than stealing from the other.
	compoundQuota := int(math.Ceil(float64(count) * CompoundShare))
	isolationQuota := count - compoundQuota
	if compoundQuota > len(compounds) {
		compoundQuota = len(compounds)
	}
	if isolationQuota > len(isolations) {
		isolationQuota = len(isolations)
	}

	selected := make([]Exercise, 0, compoundQuota+isolationQuota)
	selected = append(selected, compounds[:compoundQuota]...)
	selected = append(selected, isolations[:isolationQuota]...)
	return selected
}

// relevanceScore counts how many target muscles appear in the exercise's
// primary muscle set.
func relevanceScore(ex Exercise, targetMuscles []string) int {
	score := 0
	for _, target := range targetMuscles {
		if containsString(ex.PrimaryMuscles, target) {
			score++
		}
	}
	return score
}

// sortByRelevance sorts exercises by descending relevance score, keeping the
// original order for equal scores.
func sortByRelevance(exercises []Exercise, targetMuscles []string) {
	sort.SliceStable(exercises, func(i, j int) bool {
		return relevanceScore(exercises[i], targetMuscles) > relevanceScore(exercises[j], targetMuscles)
	})
}
