package workout

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kaseltech/ironvow-sub001/internal/errors"
	"github.com/kaseltech/ironvow-sub001/internal/sqlite"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.NewSentinel("not found")

// exerciseRepository handles database operations for the exercise catalog.
// Raw rows are mapped into Exercise values at this boundary so that the rest
// of the package never sees the storage schema.
type exerciseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// newExerciseRepository creates a SQLite-backed exercise repository.
func newExerciseRepository(db *sqlite.Database, logger *slog.Logger) *exerciseRepository {
	return &exerciseRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the full exercise catalog in declaration order.
func (r *exerciseRepository) List(ctx context.Context) ([]Exercise, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, slug, difficulty, is_compound, movement_pattern
		FROM exercises
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		ex, scanErr := scanExercise(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise rows: %w", err)
	}

	for i := range exercises {
		if err = r.attachTags(ctx, &exercises[i]); err != nil {
			return nil, fmt.Errorf("attach tags for exercise %d: %w", exercises[i].ID, err)
		}
	}
	return exercises, nil
}

// Get retrieves a single exercise by id.
func (r *exerciseRepository) Get(ctx context.Context, id int) (Exercise, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, slug, difficulty, is_compound, movement_pattern
		FROM exercises
		WHERE id = ?`, id)

	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Exercise{}, errors.Wrap(ErrNotFound, "get exercise", slog.Int("id", id))
	}
	if err != nil {
		return Exercise{}, err
	}

	if err = r.attachTags(ctx, &ex); err != nil {
		return Exercise{}, fmt.Errorf("attach tags for exercise %d: %w", id, err)
	}
	return ex, nil
}

// Create inserts an exercise with its muscle and equipment tags, returning
// the stored exercise with its assigned id.
func (r *exerciseRepository) Create(ctx context.Context, ex Exercise) (Exercise, error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return Exercise{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", rollbackErr))
		}
	}(tx)

	if ex.Slug == "" {
		ex.Slug = slugify(ex.Name)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO exercises (name, slug, difficulty, is_compound, movement_pattern)
		VALUES (?, ?, ?, ?, ?)`,
		ex.Name, ex.Slug, nullableString(ex.Difficulty), ex.IsCompound, nullableString(ex.MovementPattern))
	if err != nil {
		return Exercise{}, fmt.Errorf("insert exercise: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Exercise{}, fmt.Errorf("last insert id: %w", err)
	}
	ex.ID = int(id)

	for _, muscle := range ex.PrimaryMuscles {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO exercise_muscles (exercise_id, muscle, is_primary) VALUES (?, ?, 1)`,
			ex.ID, muscle); err != nil {
			return Exercise{}, fmt.Errorf("insert primary muscle: %w", err)
		}
	}
	for _, muscle := range ex.SecondaryMuscles {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO exercise_muscles (exercise_id, muscle, is_primary) VALUES (?, ?, 0)`,
			ex.ID, muscle); err != nil {
			return Exercise{}, fmt.Errorf("insert secondary muscle: %w", err)
		}
	}
	for _, equipment := range ex.EquipmentRequired {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO exercise_equipment (exercise_id, equipment) VALUES (?, ?)`,
			ex.ID, equipment); err != nil {
			return Exercise{}, fmt.Errorf("insert equipment: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return Exercise{}, fmt.Errorf("commit transaction: %w", err)
	}
	return ex, nil
}

// scanExercise maps one exercises row into the domain type. Nullable columns
// become empty strings.
func scanExercise(row interface{ Scan(...any) error }) (Exercise, error) {
	var (
		ex              Exercise
		difficulty      sql.NullString
		movementPattern sql.NullString
	)
	err := row.Scan(&ex.ID, &ex.Name, &ex.Slug, &difficulty, &ex.IsCompound, &movementPattern)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Exercise{}, err
		}
		return Exercise{}, fmt.Errorf("scan exercise row: %w", err)
	}
	ex.Difficulty = difficulty.String
	ex.MovementPattern = movementPattern.String
	return ex, nil
}

// attachTags loads the muscle and equipment tags for an exercise.
func (r *exerciseRepository) attachTags(ctx context.Context, ex *Exercise) error {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT muscle, is_primary FROM exercise_muscles WHERE exercise_id = ? ORDER BY muscle`,
		ex.ID)
	if err != nil {
		return fmt.Errorf("query exercise muscles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			muscle    string
			isPrimary bool
		)
		if err = rows.Scan(&muscle, &isPrimary); err != nil {
			return fmt.Errorf("scan muscle row: %w", err)
		}
		if isPrimary {
			ex.PrimaryMuscles = append(ex.PrimaryMuscles, muscle)
		} else {
			ex.SecondaryMuscles = append(ex.SecondaryMuscles, muscle)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate muscle rows: %w", err)
	}

	equipmentRows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT equipment FROM exercise_equipment WHERE exercise_id = ? ORDER BY equipment`,
		ex.ID)
	if err != nil {
		return fmt.Errorf("query exercise equipment: %w", err)
	}
	defer equipmentRows.Close()

	for equipmentRows.Next() {
		var equipment string
		if err = equipmentRows.Scan(&equipment); err != nil {
			return fmt.Errorf("scan equipment row: %w", err)
		}
		ex.EquipmentRequired = append(ex.EquipmentRequired, equipment)
	}
	if err = equipmentRows.Err(); err != nil {
		return fmt.Errorf("iterate equipment rows: %w", err)
	}
	return nil
}

// nullableString converts an empty string to a NULL column value.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
