package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kaseltech/ironvow-sub001/internal/ptr"
	"github.com/kaseltech/ironvow-sub001/internal/sqlite"
	"github.com/kaseltech/ironvow-sub001/internal/strength"
	"github.com/kaseltech/ironvow-sub001/internal/testhelpers"
	"github.com/kaseltech/ironvow-sub001/internal/workout"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	return newServiceWithClock(db, logger, func() time.Time { return now })
}

func TestService_SummaryAndCalendar(t *testing.T) {
	ctx := t.Context()
	today := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, today)

	// Three consecutive days ending today plus one unfinished session.
	for daysAgo := 2; daysAgo >= 0; daysAgo-- {
		session := SessionRecord{
			ID:            uuid.New(),
			CompletedAt:   ptr.Ref(today.AddDate(0, 0, -daysAgo)),
			TotalVolumeKg: 2500,
			ExerciseCount: 5,
		}
		if err := svc.RecordSession(ctx, session); err != nil {
			t.Fatalf("RecordSession returned unexpected error: %v", err)
		}
	}
	if err := svc.RecordSession(ctx, SessionRecord{ID: uuid.New(), CompletedAt: nil}); err != nil {
		t.Fatalf("RecordSession returned unexpected error for planned session: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary returned unexpected error: %v", err)
	}
	if summary.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", summary.CurrentStreak)
	}
	if summary.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", summary.LongestStreak)
	}
	if summary.DaysSinceLastWorkout != 0 {
		t.Errorf("DaysSinceLastWorkout = %d, want 0", summary.DaysSinceLastWorkout)
	}
	if summary.ThisMonthWorkouts != 3 {
		t.Errorf("ThisMonthWorkouts = %d, want 3", summary.ThisMonthWorkouts)
	}

	if _, err = svc.RecordLift(ctx, "Bench Press", 90, 5, today); err != nil {
		t.Fatalf("RecordLift returned unexpected error: %v", err)
	}

	calendar, err := svc.Calendar(ctx)
	if err != nil {
		t.Fatalf("Calendar returned unexpected error: %v", err)
	}
	if len(calendar) != 3 {
		t.Fatalf("Calendar has %d dates, want 3", len(calendar))
	}

	todayAggregate, ok := calendar[time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)]
	if !ok {
		t.Fatal("Calendar is missing today's aggregate")
	}
	if todayAggregate.WorkoutCount != 1 || todayAggregate.TotalVolumeKg != 2500 {
		t.Errorf("today's aggregate = %+v, want one 2500kg workout", todayAggregate)
	}
	if !todayAggregate.HasPR {
		t.Error("today's aggregate HasPR = false, want true after RecordLift")
	}
}

// The repository stores timestamps in UTC; summaries and calendars computed
// with a non-UTC clock must still land those rows on the clock's calendar
// days.
func TestService_SummaryAndCalendarWithNonUTCClock(t *testing.T) {
	ctx := t.Context()
	loc := time.FixedZone("UTC+5", 5*60*60)
	today := time.Date(2024, time.June, 12, 18, 0, 0, 0, loc)
	svc := newTestService(t, today)

	// Completed this afternoon local time; persisted as 13:00 UTC.
	session := SessionRecord{
		ID:            uuid.New(),
		CompletedAt:   ptr.Ref(today),
		TotalVolumeKg: 1800,
		ExerciseCount: 4,
	}
	if err := svc.RecordSession(ctx, session); err != nil {
		t.Fatalf("RecordSession returned unexpected error: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary returned unexpected error: %v", err)
	}
	if summary.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", summary.CurrentStreak)
	}
	if summary.ThisWeekWorkouts != 1 {
		t.Errorf("ThisWeekWorkouts = %d, want 1", summary.ThisWeekWorkouts)
	}
	if summary.ThisMonthWorkouts != 1 {
		t.Errorf("ThisMonthWorkouts = %d, want 1", summary.ThisMonthWorkouts)
	}
	if summary.DaysSinceLastWorkout != 0 {
		t.Errorf("DaysSinceLastWorkout = %d, want 0", summary.DaysSinceLastWorkout)
	}

	calendar, err := svc.Calendar(ctx)
	if err != nil {
		t.Fatalf("Calendar returned unexpected error: %v", err)
	}
	localDay := time.Date(2024, time.June, 12, 0, 0, 0, 0, loc)
	if _, ok := calendar[localDay]; !ok {
		t.Errorf("Calendar has no bucket for the local day %v: %v", localDay, calendar)
	}
}

func TestService_RecordLiftEstimatesOneRepMax(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	stored, err := svc.RecordLift(ctx, "Squat", 120, 5, now)
	if err != nil {
		t.Fatalf("RecordLift returned unexpected error: %v", err)
	}
	if stored.ID == 0 {
		t.Error("RecordLift did not assign an id")
	}
	want := 120 * (1 + 5.0/30)
	if stored.Estimated1RM != want {
		t.Errorf("Estimated1RM = %v, want %v", stored.Estimated1RM, want)
	}

	records, err := svc.repo.ListPersonalRecords(ctx)
	if err != nil {
		t.Fatalf("ListPersonalRecords returned unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("stored %d records, want 1", len(records))
	}
	if records[0].ExerciseName != "Squat" || records[0].Estimated1RM != want {
		t.Errorf("stored record = %+v, want Squat with estimated 1RM %v", records[0], want)
	}
}

func TestService_StrengthAssessment(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, now)

	// A single-rep bench at exactly the intermediate expectation for an
	// 80kg male.
	if _, err := svc.RecordLift(ctx, "Barbell Bench Press", 80, 1, now); err != nil {
		t.Fatalf("RecordLift returned unexpected error: %v", err)
	}

	assessment, err := svc.StrengthAssessment(ctx, 80, workout.ExperienceIntermediate, strength.GenderMale)
	if err != nil {
		t.Fatalf("StrengthAssessment returned unexpected error: %v", err)
	}
	if assessment.OverallScore != 60 {
		t.Errorf("OverallScore = %d, want 60", assessment.OverallScore)
	}
	if assessment.Level != "Intermediate" {
		t.Errorf("Level = %q, want %q", assessment.Level, "Intermediate")
	}
}

func TestRepository_SessionRoundTrip(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, time.June, 12, 18, 30, 0, 0, time.UTC)
	svc := newTestService(t, now)

	session := SessionRecord{
		ID:            uuid.New(),
		CompletedAt:   &now,
		TotalVolumeKg: 3210.5,
		ExerciseCount: 6,
	}
	if err := svc.repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession returned unexpected error: %v", err)
	}

	sessions, err := svc.repo.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions returned unexpected error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("ListSessions returned %d sessions, want 1", len(sessions))
	}
	got := sessions[0]
	if got.ID != session.ID {
		t.Errorf("id = %v, want %v", got.ID, session.ID)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want %v", got.CompletedAt, now)
	}
	if got.TotalVolumeKg != session.TotalVolumeKg || got.ExerciseCount != session.ExerciseCount {
		t.Errorf("round-tripped session = %+v, want %+v", got, session)
	}
}
