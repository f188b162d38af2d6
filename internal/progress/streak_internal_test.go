package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func completedOn(t time.Time) SessionRecord {
	return SessionRecord{
		ID:            uuid.New(),
		CompletedAt:   &t,
		TotalVolumeKg: 1000,
		ExerciseCount: 4,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestStreaks(t *testing.T) {
	today := date(2024, time.January, 10)

	tests := []struct {
		name     string
		sessions []SessionRecord
		want     Summary
	}{
		{
			name:     "no sessions",
			sessions: nil,
			want: Summary{
				CurrentStreak:        0,
				LongestStreak:        0,
				LastWorkoutDate:      time.Time{},
				DaysSinceLastWorkout: -1,
				ThisWeekWorkouts:     0,
				ThisMonthWorkouts:    0,
			},
		},
		{
			name: "streak ending today",
			sessions: []SessionRecord{
				completedOn(date(2024, time.January, 8).Add(7 * time.Hour)),
				completedOn(date(2024, time.January, 9).Add(18 * time.Hour)),
				completedOn(date(2024, time.January, 10).Add(6 * time.Hour)),
			},
			want: Summary{
				CurrentStreak:        3,
				LongestStreak:        3,
				LastWorkoutDate:      date(2024, time.January, 10),
				DaysSinceLastWorkout: 0,
				ThisWeekWorkouts:     3,
				ThisMonthWorkouts:    3,
			},
		},
		{
			name: "streak survives a missed today",
			sessions: []SessionRecord{
				completedOn(date(2024, time.January, 8)),
				completedOn(date(2024, time.January, 9)),
			},
			want: Summary{
				CurrentStreak:        2,
				LongestStreak:        2,
				LastWorkoutDate:      date(2024, time.January, 9),
				DaysSinceLastWorkout: 1,
				ThisWeekWorkouts:     2,
				ThisMonthWorkouts:    2,
			},
		},
		{
			name: "gap before yesterday breaks the current streak",
			sessions: []SessionRecord{
				completedOn(date(2024, time.January, 5)),
				completedOn(date(2024, time.January, 6)),
				completedOn(date(2024, time.January, 7)),
				completedOn(date(2024, time.January, 8)),
			},
			want: Summary{
				CurrentStreak:        0,
				LongestStreak:        4,
				LastWorkoutDate:      date(2024, time.January, 8),
				DaysSinceLastWorkout: 2,
				ThisWeekWorkouts:     1,
				ThisMonthWorkouts:    4,
			},
		},
		{
			name: "multiple sessions on one day count once",
			sessions: []SessionRecord{
				completedOn(date(2024, time.January, 9).Add(8 * time.Hour)),
				completedOn(date(2024, time.January, 9).Add(19 * time.Hour)),
				completedOn(date(2024, time.January, 10)),
			},
			want: Summary{
				CurrentStreak:        2,
				LongestStreak:        2,
				LastWorkoutDate:      date(2024, time.January, 10),
				DaysSinceLastWorkout: 0,
				ThisWeekWorkouts:     2,
				ThisMonthWorkouts:    2,
			},
		},
		{
			name: "longest streak in the past beats the current one",
			sessions: []SessionRecord{
				completedOn(date(2023, time.December, 20)),
				completedOn(date(2023, time.December, 21)),
				completedOn(date(2023, time.December, 22)),
				completedOn(date(2023, time.December, 23)),
				completedOn(date(2023, time.December, 24)),
				completedOn(date(2024, time.January, 10)),
			},
			want: Summary{
				CurrentStreak:        1,
				LongestStreak:        5,
				LastWorkoutDate:      date(2024, time.January, 10),
				DaysSinceLastWorkout: 0,
				ThisWeekWorkouts:     1,
				ThisMonthWorkouts:    1,
			},
		},
		{
			name: "uncompleted sessions are ignored",
			sessions: []SessionRecord{
				{ID: uuid.New(), CompletedAt: nil, TotalVolumeKg: 500, ExerciseCount: 3},
				completedOn(date(2024, time.January, 10)),
			},
			want: Summary{
				CurrentStreak:        1,
				LongestStreak:        1,
				LastWorkoutDate:      date(2024, time.January, 10),
				DaysSinceLastWorkout: 0,
				ThisWeekWorkouts:     1,
				ThisMonthWorkouts:    1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streaks(tt.sessions, today)
			if got != tt.want {
				t.Errorf("Streaks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// UTC-stored timestamps count toward the caller's calendar days when the
// reference day carries a non-UTC location.
func TestStreaksNormalizesToTodaysLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)

	t.Run("same local date as the UTC date", func(t *testing.T) {
		// 13:00 UTC on June 12 is 18:00 at UTC+5, still June 12 both ways.
		sessions := []SessionRecord{
			completedOn(time.Date(2024, time.June, 12, 13, 0, 0, 0, time.UTC)),
		}
		today := time.Date(2024, time.June, 12, 18, 0, 0, 0, loc)

		got := Streaks(sessions, today)
		if got.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", got.CurrentStreak)
		}
		if got.ThisWeekWorkouts != 1 {
			t.Errorf("ThisWeekWorkouts = %d, want 1", got.ThisWeekWorkouts)
		}
		if got.ThisMonthWorkouts != 1 {
			t.Errorf("ThisMonthWorkouts = %d, want 1", got.ThisMonthWorkouts)
		}
		if got.DaysSinceLastWorkout != 0 {
			t.Errorf("DaysSinceLastWorkout = %d, want 0", got.DaysSinceLastWorkout)
		}
	})

	t.Run("UTC evening lands on the next local day", func(t *testing.T) {
		// 21:00 UTC on June 12 is 02:00 on June 13 at UTC+5.
		sessions := []SessionRecord{
			completedOn(time.Date(2024, time.June, 12, 21, 0, 0, 0, time.UTC)),
		}
		today := time.Date(2024, time.June, 13, 8, 0, 0, 0, loc)

		got := Streaks(sessions, today)
		if got.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", got.CurrentStreak)
		}
		if got.DaysSinceLastWorkout != 0 {
			t.Errorf("DaysSinceLastWorkout = %d, want 0", got.DaysSinceLastWorkout)
		}
		wantDate := time.Date(2024, time.June, 13, 0, 0, 0, 0, loc)
		if !got.LastWorkoutDate.Equal(wantDate) {
			t.Errorf("LastWorkoutDate = %v, want %v", got.LastWorkoutDate, wantDate)
		}
	})
}

// The streak crossing a month boundary stays unbroken while the month
// counter resets.
func TestStreaksAcrossMonthBoundary(t *testing.T) {
	sessions := []SessionRecord{
		completedOn(date(2024, time.January, 30)),
		completedOn(date(2024, time.January, 31)),
		completedOn(date(2024, time.February, 1)),
	}

	got := Streaks(sessions, date(2024, time.February, 1))
	if got.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got.CurrentStreak)
	}
	if got.ThisMonthWorkouts != 1 {
		t.Errorf("ThisMonthWorkouts = %d, want 1", got.ThisMonthWorkouts)
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "monday maps to itself", in: date(2024, time.January, 8), want: date(2024, time.January, 8)},
		{name: "wednesday", in: date(2024, time.January, 10), want: date(2024, time.January, 8)},
		{name: "sunday belongs to the preceding monday", in: date(2024, time.January, 14), want: date(2024, time.January, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mondayOf(tt.in); !got.Equal(tt.want) {
				t.Errorf("mondayOf(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateOfKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 23:30 local on Jan 9 is Jan 9 locally even though it is Jan 9 13:30 UTC.
	in := time.Date(2024, time.January, 9, 23, 30, 0, 0, loc)
	got := dateOf(in)
	want := time.Date(2024, time.January, 9, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("dateOf(%v) = %v, want %v", in, got, want)
	}
	if got.Location() != loc {
		t.Errorf("dateOf changed the location to %v", got.Location())
	}
}
