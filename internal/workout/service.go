package workout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kaseltech/ironvow-sub001/internal/sqlite"
)

// Service handles the business logic for workout generation. All
// dependencies are injected at construction time; there is no package-level
// state.
type Service struct {
	exercises  *exerciseRepository
	logger     *slog.Logger
	generators []generator
}

// NewService creates a new workout service. When openaiAPIKey is empty the
// AI-assisted generation path is disabled and only the rule-based and
// exemplar tiers remain.
func NewService(db *sqlite.Database, logger *slog.Logger, openaiAPIKey string) *Service {
	var generators []generator
	if openaiAPIKey != "" {
		generators = append(generators, newAIGenerator(newOpenAICompleter(openaiAPIKey), logger))
	}
	generators = append(generators, ruleBasedGenerator{}, exemplarGenerator{})

	return &Service{
		exercises:  newExerciseRepository(db, logger),
		logger:     logger,
		generators: generators,
	}
}

// newServiceWithGenerators wires an explicit generator chain, used by tests
// to stub the external text-generation service.
func newServiceWithGenerators(db *sqlite.Database, logger *slog.Logger, generators ...generator) *Service {
	return &Service{
		exercises:  newExerciseRepository(db, logger),
		logger:     logger,
		generators: generators,
	}
}

// Generate produces a workout for the given request. It validates the
// request, filters the catalog down to admissible candidates, and walks the
// generator chain until one succeeds. A generator failure is logged as a
// degraded-mode event and never surfaces to the caller as long as a later
// tier succeeds.
func (s *Service) Generate(ctx context.Context, req Request) (GeneratedWorkout, error) {
	if err := req.Validate(); err != nil {
		return GeneratedWorkout{}, fmt.Errorf("validate request: %w", err)
	}

	pool, err := s.exercises.List(ctx)
	if err != nil {
		return GeneratedWorkout{}, fmt.Errorf("list exercises: %w", err)
	}

	candidates := filterExercises(pool, req)

	var lastErr error
	for _, g := range s.generators {
		workout, genErr := g.generate(ctx, req, candidates)
		if genErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "workout generator failed, falling back",
				slog.String("generator", g.name()),
				slog.Any("error", genErr))
			lastErr = genErr
			continue
		}
		return workout, nil
	}

	// The exemplar tier never fails, so this is only reachable with a
	// custom generator chain.
	return GeneratedWorkout{}, fmt.Errorf("all workout generators failed: %w", lastErr)
}

// ListExercises returns the full exercise catalog.
func (s *Service) ListExercises(ctx context.Context) ([]Exercise, error) {
	exercises, err := s.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// GetExercise retrieves a specific exercise by id.
func (s *Service) GetExercise(ctx context.Context, id int) (Exercise, error) {
	exercise, err := s.exercises.Get(ctx, id)
	if err != nil {
		return Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	return exercise, nil
}

// CreateExercise adds an exercise to the catalog, returning it with its
// assigned id.
func (s *Service) CreateExercise(ctx context.Context, ex Exercise) (Exercise, error) {
	created, err := s.exercises.Create(ctx, ex)
	if err != nil {
		return Exercise{}, fmt.Errorf("create exercise: %w", err)
	}
	return created, nil
}
