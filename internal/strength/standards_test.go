package strength_test

import (
	"testing"

	"github.com/kaseltech/ironvow-sub001/internal/strength"
	"github.com/kaseltech/ironvow-sub001/internal/workout"
)

func TestFindStandardForExercise(t *testing.T) {
	tests := []struct {
		name     string
		exercise string
		wantSlug string
		wantNil  bool
	}{
		{name: "exact name", exercise: "Bench Press", wantSlug: "bench-press"},
		{name: "case-insensitive exact name", exercise: "DEADLIFT", wantSlug: "deadlift"},
		{name: "alias substring", exercise: "Barbell Bench Press", wantSlug: "bench-press"},
		{name: "front squat variant", exercise: "Front Squat", wantSlug: "squat"},
		{name: "military press alias", exercise: "Seated Military Press", wantSlug: "overhead-press"},
		{name: "ohp abbreviation", exercise: "OHP", wantSlug: "overhead-press"},
		{name: "sumo deadlift variant", exercise: "Sumo Deadlift", wantSlug: "deadlift"},
		{name: "unknown lift", exercise: "Bicep Curl", wantNil: true},
		{name: "empty name", exercise: "", wantNil: true},
		{name: "whitespace only", exercise: "   ", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strength.FindStandardForExercise(tt.exercise)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("FindStandardForExercise(%q) = %q, want nil", tt.exercise, got.Slug)
				}
				return
			}
			if got == nil {
				t.Fatalf("FindStandardForExercise(%q) = nil, want %q", tt.exercise, tt.wantSlug)
			}
			if got.Slug != tt.wantSlug {
				t.Errorf("FindStandardForExercise(%q) = %q, want %q", tt.exercise, got.Slug, tt.wantSlug)
			}
		})
	}
}

func TestExpected1RM(t *testing.T) {
	tests := []struct {
		name         string
		lift         string
		bodyweightKg float64
		level        workout.ExperienceLevel
		gender       strength.Gender
		want         float64
		wantOK       bool
	}{
		{
			name:         "intermediate male squat at 180lb-class bodyweight",
			lift:         "Squat",
			bodyweightKg: 180,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         225,
			wantOK:       true,
		},
		{
			name:         "intermediate male bench equals bodyweight",
			lift:         "Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         80,
			wantOK:       true,
		},
		{
			name:         "advanced female deadlift",
			lift:         "Deadlift",
			bodyweightKg: 60,
			level:        workout.ExperienceAdvanced,
			gender:       strength.GenderFemale,
			want:         105,
			wantOK:       true,
		},
		{
			name:         "result is rounded to the nearest kilogram",
			lift:         "Overhead Press",
			bodyweightKg: 82,
			level:        workout.ExperienceBeginner,
			gender:       strength.GenderMale,
			want:         29, // 82 * 0.35 = 28.7
			wantOK:       true,
		},
		{
			name:         "unknown lift",
			lift:         "Face Pull",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			wantOK:       false,
		},
		{
			name:         "unknown experience level",
			lift:         "Squat",
			bodyweightKg: 80,
			level:        workout.ExperienceLevel("elite"),
			gender:       strength.GenderMale,
			wantOK:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := strength.Expected1RM(tt.lift, tt.bodyweightKg, tt.level, tt.gender)
			if ok != tt.wantOK {
				t.Fatalf("Expected1RM ok = %t, want %t", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Expected1RM = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		actual1RM    float64
		lift         string
		bodyweightKg float64
		level        workout.ExperienceLevel
		gender       strength.Gender
		want         int
	}{
		{
			name:         "meeting the expected max scores 60",
			actual1RM:    80,
			lift:         "Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         60,
		},
		{
			name:         "fifty percent of expected scores 30",
			actual1RM:    40,
			lift:         "Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         30,
		},
		{
			name:         "one and a half times expected scores 90",
			actual1RM:    120,
			lift:         "Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         90,
		},
		{
			// Advanced male bench at 80kg is 120; 1.2x caps at 144.
			name:         "elite cap",
			actual1RM:    144,
			lift:         "Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         100,
		},
		{
			name:         "far below expected clamps to zero",
			actual1RM:    1,
			lift:         "Deadlift",
			bodyweightKg: 100,
			level:        workout.ExperienceAdvanced,
			gender:       strength.GenderMale,
			want:         0,
		},
		{
			name:         "unknown level falls back to intermediate threshold",
			actual1RM:    80,
			lift:         "Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceLevel("elite"),
			gender:       strength.GenderMale,
			want:         60,
		},
		{
			name:         "unknown lift scores zero",
			actual1RM:    100,
			lift:         "Lateral Raise",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         0,
		},
		{
			name:         "non-positive bodyweight scores zero",
			actual1RM:    100,
			lift:         "Bench Press",
			bodyweightKg: 0,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         0,
		},
		{
			name:         "non-positive actual scores zero",
			actual1RM:    0,
			lift:         "Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         0,
		},
		{
			name:         "variant names resolve before scoring",
			actual1RM:    80,
			lift:         "Barbell Bench Press",
			bodyweightKg: 80,
			level:        workout.ExperienceIntermediate,
			gender:       strength.GenderMale,
			want:         60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strength.Score(tt.actual1RM, tt.lift, tt.bodyweightKg, tt.level, tt.gender)
			if got != tt.want {
				t.Errorf("Score(%v, %q, %v, %q, %q) = %d, want %d",
					tt.actual1RM, tt.lift, tt.bodyweightKg, tt.level, tt.gender, got, tt.want)
			}
		})
	}
}

// Score grows monotonically with the actual one-rep max.
func TestScoreMonotonic(t *testing.T) {
	prev := -1
	for actual := 10.0; actual <= 200; actual += 5 {
		got := strength.Score(actual, "Squat", 80, workout.ExperienceIntermediate, strength.GenderMale)
		if got < prev {
			t.Fatalf("Score decreased from %d to %d at actual = %v", prev, got, actual)
		}
		prev = got
	}
}
