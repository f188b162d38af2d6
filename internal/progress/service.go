package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kaseltech/ironvow-sub001/internal/sqlite"
	"github.com/kaseltech/ironvow-sub001/internal/strength"
	"github.com/kaseltech/ironvow-sub001/internal/workout"
)

// Service exposes the read-side analytics over workout history. The
// repository and clock are injected so that tests can run in parallel
// against isolated databases with a frozen "now".
type Service struct {
	repo   *repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new progress service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newRepository(db, logger),
		logger: logger,
		now:    time.Now,
	}
}

// newServiceWithClock is used by tests to freeze the reference day.
func newServiceWithClock(db *sqlite.Database, logger *slog.Logger, now func() time.Time) *Service {
	svc := NewService(db, logger)
	svc.now = now
	return svc
}

// Summary computes streaks and recent-activity counts over the stored
// session history.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list sessions: %w", err)
	}
	return Streaks(sessions, s.now()), nil
}

// Calendar computes the date-keyed activity aggregates, with dates evaluated
// in the clock's location. The session and personal-record reads are
// independent and issued concurrently.
func (s *Service) Calendar(ctx context.Context) (map[time.Time]DayAggregate, error) {
	var (
		sessions []SessionRecord
		records  []PersonalRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if sessions, err = s.repo.ListSessions(gctx); err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if records, err = s.repo.ListPersonalRecords(gctx); err != nil {
			return fmt.Errorf("list personal records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Calendar(sessions, records, s.now().Location()), nil
}

// RecordSession stores a session record.
func (s *Service) RecordSession(ctx context.Context, session SessionRecord) error {
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// RecordLift stores a personal record for a set, estimating its one-rep max
// with the Epley formula.
func (s *Service) RecordLift(
	ctx context.Context,
	exerciseName string,
	weightKg float64,
	reps int,
	achievedAt time.Time,
) (PersonalRecord, error) {
	record := PersonalRecord{
		ID:           0,
		ExerciseName: exerciseName,
		WeightKg:     weightKg,
		Reps:         reps,
		Estimated1RM: EstimateOneRepMax(weightKg, reps),
		AchievedAt:   achievedAt,
	}

	stored, err := s.repo.CreatePersonalRecord(ctx, record)
	if err != nil {
		return PersonalRecord{}, fmt.Errorf("create personal record: %w", err)
	}
	return stored, nil
}

// StrengthAssessment scores the stored personal records against the
// strength standards for the four major lifts.
func (s *Service) StrengthAssessment(
	ctx context.Context,
	bodyweightKg float64,
	level workout.ExperienceLevel,
	gender strength.Gender,
) (strength.Assessment, error) {
	records, err := s.repo.ListPersonalRecords(ctx)
	if err != nil {
		return strength.Assessment{}, fmt.Errorf("list personal records: %w", err)
	}

	prs := make([]strength.PR, 0, len(records))
	for _, record := range records {
		prs = append(prs, strength.PR{
			ExerciseName: record.ExerciseName,
			OneRepMax:    record.Estimated1RM,
		})
	}

	return strength.OverallLevel(prs, bodyweightKg, level, gender), nil
}
