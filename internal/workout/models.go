// Package workout generates personalized workout sessions from an exercise
// catalog, user constraints, and an optional AI-assisted selection path.
package workout

import (
	"log/slog"
	"strings"

	"github.com/kaseltech/ironvow-sub001/internal/errors"
)

// Location describes where the workout takes place. It decides which
// equipment can be assumed available.
type Location string

// Location constants.
const (
	LocationGym     Location = "gym"
	LocationHome    Location = "home"
	LocationOutdoor Location = "outdoor"
)

// ExperienceLevel classifies training age. It drives both exercise filtering
// and set/rep prescription.
type ExperienceLevel string

// Experience level constants.
const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Type classifies a workout by the muscle groups it targets.
type Type string

// Workout type constants.
const (
	TypePush     Type = "push"
	TypePull     Type = "pull"
	TypeLegs     Type = "legs"
	TypeUpper    Type = "upper"
	TypeLower    Type = "lower"
	TypeFullBody Type = "fullbody"
)

// Exercise represents a single exercise from the catalog, e.g. Squat or
// Bench Press. The catalog is reference data: created by import and
// read-only at generation time.
type Exercise struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	PrimaryMuscles   []string `json:"primary_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	// EquipmentRequired lists the equipment tags the exercise needs.
	// Empty means bodyweight.
	EquipmentRequired []string `json:"equipment_required"`
	// Difficulty is one of beginner/intermediate/advanced, or empty when
	// the catalog does not classify the exercise.
	Difficulty string `json:"difficulty,omitempty"`
	IsCompound bool   `json:"is_compound"`
	// MovementPattern is an optional tag such as "overhead press" used for
	// injury-avoidance matching.
	MovementPattern string `json:"movement_pattern,omitempty"`
}

// Injury describes an active injury and the movements to keep out of the
// generated workout.
type Injury struct {
	BodyPart       string
	AvoidMovements []string
}

// Request carries the constraints for a single workout generation call.
// It is constructed per call and never persisted.
type Request struct {
	Location        Location
	TargetMuscles   []string
	DurationMinutes int
	Experience      ExperienceLevel
	Injuries        []Injury
	Equipment       []string
}

// ErrInvalidRequest is returned when a generation request fails validation.
var ErrInvalidRequest = errors.NewSentinel("invalid generation request")

// Validate rejects malformed requests before any filtering happens.
func (r Request) Validate() error {
	if r.DurationMinutes <= 0 {
		return errors.Wrap(ErrInvalidRequest, "duration must be positive",
			slog.Int("duration_minutes", r.DurationMinutes))
	}
	if len(r.TargetMuscles) == 0 {
		return errors.Wrap(ErrInvalidRequest, "target muscles must not be empty")
	}
	return nil
}

// slugify derives a canonical slug from an exercise name, e.g.
// "Bench Press" -> "bench-press".
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// GeneratedExercise is a single exercise within a generated workout together
// with its prescription. Ordering within a workout is significant: compound
// movements come first.
type GeneratedExercise struct {
	Exercise Exercise
	Sets     int
	// Reps is either a numeric range such as "8-10" or a special token such
	// as "AMRAP".
	Reps           string
	TargetWeightKg *float64
	RestSeconds    int
	Notes          string
}

// GeneratedWorkout is the transient output of the generation pipeline.
// Persisting it, if at all, is the caller's concern.
type GeneratedWorkout struct {
	Name            string
	Description     string
	DurationMinutes int
	Type            Type
	TargetMuscles   []string
	Exercises       []GeneratedExercise
}
