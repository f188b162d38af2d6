package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaseltech/ironvow-sub001/internal/errors"
)

// ErrNoCandidates is returned by generators that need a non-empty candidate
// pool. It triggers the next generator in the chain rather than surfacing to
// the caller.
var ErrNoCandidates = errors.NewSentinel("no candidate exercises")

// generator produces a workout from a request and the filtered candidate
// exercises. Generators are arranged in an ordered fallback chain; the first
// one to succeed wins.
type generator interface {
	name() string
	generate(ctx context.Context, req Request, candidates []Exercise) (GeneratedWorkout, error)
}

// ruleBasedGenerator assembles a workout deterministically: selection by
// relevance with a compound/isolation split, table-driven prescriptions, and
// classification-based naming.
type ruleBasedGenerator struct{}

func (ruleBasedGenerator) name() string { return "rule-based" }

func (ruleBasedGenerator) generate(_ context.Context, req Request, candidates []Exercise) (GeneratedWorkout, error) {
	if len(candidates) == 0 {
		return GeneratedWorkout{}, ErrNoCandidates
	}

	count := exerciseCountForDuration(req.DurationMinutes)
	selected := selectExercises(candidates, req.TargetMuscles, count)
	if len(selected) == 0 {
		return GeneratedWorkout{}, ErrNoCandidates
	}

	exercises := make([]GeneratedExercise, 0, len(selected))
	for _, ex := range selected {
		p := prescribe(ex.IsCompound, req.Experience)
		exercises = append(exercises, GeneratedExercise{
			Exercise:       ex,
			Sets:           p.Sets,
			Reps:           p.Reps,
			TargetWeightKg: nil,
			RestSeconds:    p.RestSeconds,
			Notes:          "",
		})
	}

	workoutType := classifyWorkout(req.TargetMuscles)
	return GeneratedWorkout{
		Name:            workoutName(workoutType, req.Experience),
		Description:     describeWorkout(workoutType, req),
		DurationMinutes: req.DurationMinutes,
		Type:            workoutType,
		TargetMuscles:   req.TargetMuscles,
		Exercises:       exercises,
	}, nil
}

// describeWorkout builds a short human-readable summary of the session.
func describeWorkout(workoutType Type, req Request) string {
	return fmt.Sprintf("A %d-minute %s workout targeting %s.",
		req.DurationMinutes, workoutType, strings.Join(req.TargetMuscles, ", "))
}
