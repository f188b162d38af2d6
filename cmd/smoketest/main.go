// Command smoketest exercises the whole library end to end against a SQLite
// database: it seeds a small exercise catalog, generates a workout, records
// a few completed sessions and lifts, and prints the resulting streak,
// calendar, and strength summaries.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kaseltech/ironvow-sub001/internal/envstruct"
	"github.com/kaseltech/ironvow-sub001/internal/errors"
	"github.com/kaseltech/ironvow-sub001/internal/logging"
	"github.com/kaseltech/ironvow-sub001/internal/progress"
	"github.com/kaseltech/ironvow-sub001/internal/ptr"
	"github.com/kaseltech/ironvow-sub001/internal/sqlite"
	"github.com/kaseltech/ironvow-sub001/internal/strength"
	"github.com/kaseltech/ironvow-sub001/internal/workout"
)

type config struct {
	// SqliteURL is the URL to the SQLite database. Use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"IRONVOW_SQLITE_URL" envDefault:":memory:"`
	// OpenAIAPIKey enables the AI-assisted generation path when set.
	OpenAIAPIKey string `env:"IRONVOW_OPENAI_API_KEY" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer db.Close()

	workoutSvc := workout.NewService(db, logger, cfg.OpenAIAPIKey)
	progressSvc := progress.NewService(db, logger)

	if err = seedCatalog(ctx, workoutSvc); err != nil {
		return errors.Wrap(err, "seed catalog")
	}

	generated, err := workoutSvc.Generate(ctx, workout.Request{
		Location:        workout.LocationGym,
		TargetMuscles:   []string{"chest", "shoulders", "triceps"},
		DurationMinutes: 60,
		Experience:      workout.ExperienceIntermediate,
		Injuries:        nil,
		Equipment:       nil,
	})
	if err != nil {
		return errors.Wrap(err, "generate workout")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "generated workout",
		slog.String("name", generated.Name),
		slog.String("type", string(generated.Type)),
		slog.Int("exercises", len(generated.Exercises)))

	if err = seedHistory(ctx, progressSvc); err != nil {
		return errors.Wrap(err, "seed history")
	}

	summary, err := progressSvc.Summary(ctx)
	if err != nil {
		return errors.Wrap(err, "compute summary")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "progress summary",
		slog.Int("current_streak", summary.CurrentStreak),
		slog.Int("longest_streak", summary.LongestStreak),
		slog.Int("this_week", summary.ThisWeekWorkouts),
		slog.Int("this_month", summary.ThisMonthWorkouts))

	calendar, err := progressSvc.Calendar(ctx)
	if err != nil {
		return errors.Wrap(err, "compute calendar")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "calendar computed", slog.Int("active_days", len(calendar)))

	assessment, err := progressSvc.StrengthAssessment(ctx, 80,
		workout.ExperienceIntermediate, strength.GenderMale)
	if err != nil {
		return errors.Wrap(err, "compute strength assessment")
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "strength assessment",
		slog.Int("overall_score", assessment.OverallScore),
		slog.String("level", assessment.Level))

	return nil
}

// seedCatalog inserts a minimal push-day exercise catalog.
func seedCatalog(ctx context.Context, svc *workout.Service) error {
	catalog := []workout.Exercise{
		{
			Name:              "Bench Press",
			PrimaryMuscles:    []string{"chest"},
			SecondaryMuscles:  []string{"triceps", "shoulders"},
			EquipmentRequired: []string{"barbell", "bench"},
			IsCompound:        true,
			MovementPattern:   "horizontal press",
		},
		{
			Name:              "Shoulder Press",
			PrimaryMuscles:    []string{"shoulders"},
			SecondaryMuscles:  []string{"triceps"},
			EquipmentRequired: []string{"dumbbell"},
			Difficulty:        "intermediate",
			IsCompound:        true,
			MovementPattern:   "overhead press",
		},
		{
			Name:              "Push-Up",
			PrimaryMuscles:    []string{"chest"},
			SecondaryMuscles:  []string{"triceps"},
			EquipmentRequired: []string{"bodyweight"},
			IsCompound:        true,
			MovementPattern:   "horizontal press",
		},
		{
			Name:           "Lateral Raise",
			PrimaryMuscles: []string{"shoulders"},
			EquipmentRequired: []string{
				"dumbbell",
			},
			IsCompound: false,
		},
		{
			Name:              "Tricep Extension",
			PrimaryMuscles:    []string{"triceps"},
			EquipmentRequired: []string{"cable"},
			IsCompound:        false,
		},
	}

	for _, ex := range catalog {
		if _, err := svc.CreateExercise(ctx, ex); err != nil {
			return errors.Wrap(err, "create exercise", slog.String("name", ex.Name))
		}
	}
	return nil
}

// seedHistory records a three-day run of completed sessions and one lift.
func seedHistory(ctx context.Context, svc *progress.Service) error {
	now := time.Now()
	for daysAgo := 2; daysAgo >= 0; daysAgo-- {
		session := progress.SessionRecord{
			ID:            uuid.New(),
			CompletedAt:   ptr.Ref(now.AddDate(0, 0, -daysAgo)),
			TotalVolumeKg: 4200,
			ExerciseCount: 5,
		}
		if err := svc.RecordSession(ctx, session); err != nil {
			return errors.Wrap(err, "record session")
		}
	}

	if _, err := svc.RecordLift(ctx, "Barbell Bench Press", 80, 5, now); err != nil {
		return errors.Wrap(err, "record lift")
	}
	return nil
}

func main() {
	ctx := context.Background()
	handler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(handler)

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoketest failed",
			append([]slog.Attr{slog.Any("error", err)}, errors.SlogAttrs(err)...)...)
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "smoketest successful 🙌")
}
