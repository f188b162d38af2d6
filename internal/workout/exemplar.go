package workout

import "context"

// exemplarExercise is a well-known exercise used when the catalog produced no
// admissible candidates at all.
type exemplarExercise struct {
	name       string
	isCompound bool
	muscles    []string
}

// exemplarsByType holds the canonical fallback list for each workout type.
//
//nolint:gochecknoglobals // immutable fallback catalog, safe for concurrent reads.
var exemplarsByType = map[Type][]exemplarExercise{
	TypePush: {
		{name: "Push-Up", isCompound: true, muscles: []string{"chest", "triceps"}},
		{name: "Bench Press", isCompound: true, muscles: []string{"chest", "triceps"}},
		{name: "Incline Dumbbell Press", isCompound: true, muscles: []string{"chest", "shoulders"}},
		{name: "Shoulder Press", isCompound: true, muscles: []string{"shoulders", "triceps"}},
		{name: "Lateral Raise", isCompound: false, muscles: []string{"shoulders"}},
		{name: "Tricep Extension", isCompound: false, muscles: []string{"triceps"}},
	},
	TypePull: {
		{name: "Pull-Up", isCompound: true, muscles: []string{"back", "biceps"}},
		{name: "Bent-Over Row", isCompound: true, muscles: []string{"back", "biceps"}},
		{name: "Lat Pulldown", isCompound: true, muscles: []string{"back"}},
		{name: "Face Pull", isCompound: false, muscles: []string{"rear_delts"}},
		{name: "Bicep Curl", isCompound: false, muscles: []string{"biceps"}},
	},
	TypeLegs: {
		{name: "Squat", isCompound: true, muscles: []string{"quads", "glutes"}},
		{name: "Romanian Deadlift", isCompound: true, muscles: []string{"hamstrings", "glutes"}},
		{name: "Lunge", isCompound: true, muscles: []string{"quads", "glutes"}},
		{name: "Leg Press", isCompound: true, muscles: []string{"quads"}},
		{name: "Leg Curl", isCompound: false, muscles: []string{"hamstrings"}},
		{name: "Calf Raise", isCompound: false, muscles: []string{"calves"}},
	},
	TypeUpper: {
		{name: "Bench Press", isCompound: true, muscles: []string{"chest", "triceps"}},
		{name: "Bent-Over Row", isCompound: true, muscles: []string{"back", "biceps"}},
		{name: "Shoulder Press", isCompound: true, muscles: []string{"shoulders", "triceps"}},
		{name: "Pull-Up", isCompound: true, muscles: []string{"back", "biceps"}},
		{name: "Bicep Curl", isCompound: false, muscles: []string{"biceps"}},
		{name: "Tricep Extension", isCompound: false, muscles: []string{"triceps"}},
	},
	TypeLower: {
		{name: "Squat", isCompound: true, muscles: []string{"quads", "glutes"}},
		{name: "Deadlift", isCompound: true, muscles: []string{"hamstrings", "glutes"}},
		{name: "Hip Thrust", isCompound: true, muscles: []string{"glutes"}},
		{name: "Lunge", isCompound: true, muscles: []string{"quads", "glutes"}},
		{name: "Calf Raise", isCompound: false, muscles: []string{"calves"}},
	},
	TypeFullBody: {
		{name: "Squat", isCompound: true, muscles: []string{"quads", "glutes"}},
		{name: "Bench Press", isCompound: true, muscles: []string{"chest", "triceps"}},
		{name: "Bent-Over Row", isCompound: true, muscles: []string{"back", "biceps"}},
		{name: "Shoulder Press", isCompound: true, muscles: []string{"shoulders", "triceps"}},
		{name: "Deadlift", isCompound: true, muscles: []string{"hamstrings", "glutes"}},
		{name: "Plank", isCompound: false, muscles: []string{"core"}},
	},
}

// exemplarGenerator is the last resort of the fallback chain: when the
// catalog produced zero admissible exercises, it emits a static list of
// well-known exercises for the classified workout type. It never fails.
type exemplarGenerator struct{}

func (exemplarGenerator) name() string { return "exemplar" }

func (exemplarGenerator) generate(_ context.Context, req Request, _ []Exercise) (GeneratedWorkout, error) {
	workoutType := classifyWorkout(req.TargetMuscles)

	exemplars := exemplarsByType[workoutType]
	count := req.DurationMinutes / MinutesPerExercise
	if count > len(exemplars) {
		count = len(exemplars)
	}

	exercises := make([]GeneratedExercise, 0, count)
	for _, exemplar := range exemplars[:count] {
		p := prescribe(exemplar.isCompound, req.Experience)
		exercises = append(exercises, GeneratedExercise{
			Exercise: Exercise{
				ID:               0,
				Name:             exemplar.name,
				Slug:             slugify(exemplar.name),
				PrimaryMuscles:   exemplar.muscles,
				SecondaryMuscles: nil,
				IsCompound:       exemplar.isCompound,
			},
			Sets:           p.Sets,
			Reps:           p.Reps,
			TargetWeightKg: nil,
			RestSeconds:    p.RestSeconds,
			Notes:          "",
		})
	}

	return GeneratedWorkout{
		Name:            workoutName(workoutType, req.Experience),
		Description:     describeWorkout(workoutType, req),
		DurationMinutes: req.DurationMinutes,
		Type:            workoutType,
		TargetMuscles:   req.TargetMuscles,
		Exercises:       exercises,
	}, nil
}
