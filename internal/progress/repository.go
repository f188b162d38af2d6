package progress

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kaseltech/ironvow-sub001/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// repository handles database operations for session history and personal
// records. Raw rows are converted into domain types at this boundary.
type repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// newRepository creates a SQLite-backed progress repository.
func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// ListSessions returns all recorded workout sessions, completed or not.
func (r *repository) ListSessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, completed_at, total_volume_kg, exercise_count
		FROM workout_sessions
		ORDER BY completed_at`)
	if err != nil {
		return nil, fmt.Errorf("query workout sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		var (
			idStr          string
			completedAtStr sql.NullString
			session        SessionRecord
		)
		if err = rows.Scan(&idStr, &completedAtStr, &session.TotalVolumeKg, &session.ExerciseCount); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}

		if session.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("parse session id %q: %w", idStr, err)
		}
		if session.CompletedAt, err = parseTimestamp(completedAtStr); err != nil {
			return nil, fmt.Errorf("parse completed_at: %w", err)
		}

		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}
	return sessions, nil
}

// CreateSession stores a session record. A nil CompletedAt marks a planned
// but unfinished session.
func (r *repository) CreateSession(ctx context.Context, session SessionRecord) error {
	var completedAt sql.NullString
	if session.CompletedAt != nil {
		completedAt = sql.NullString{String: session.CompletedAt.UTC().Format(timestampFormat), Valid: true}
	}

	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workout_sessions (id, completed_at, total_volume_kg, exercise_count)
		VALUES (?, ?, ?, ?)`,
		session.ID.String(), completedAt, session.TotalVolumeKg, session.ExerciseCount); err != nil {
		return fmt.Errorf("insert workout session: %w", err)
	}
	return nil
}

// ListPersonalRecords returns all stored personal records.
func (r *repository) ListPersonalRecords(ctx context.Context) ([]PersonalRecord, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, exercise_name, weight_kg, reps, estimated_1rm, achieved_at
		FROM personal_records
		ORDER BY achieved_at`)
	if err != nil {
		return nil, fmt.Errorf("query personal records: %w", err)
	}
	defer rows.Close()

	var records []PersonalRecord
	for rows.Next() {
		var (
			record        PersonalRecord
			achievedAtStr string
		)
		if err = rows.Scan(&record.ID, &record.ExerciseName, &record.WeightKg,
			&record.Reps, &record.Estimated1RM, &achievedAtStr); err != nil {
			return nil, fmt.Errorf("scan personal record row: %w", err)
		}
		if record.AchievedAt, err = time.Parse(timestampFormat, achievedAtStr); err != nil {
			return nil, fmt.Errorf("parse achieved_at: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate personal record rows: %w", err)
	}
	return records, nil
}

// CreatePersonalRecord stores a personal record.
func (r *repository) CreatePersonalRecord(ctx context.Context, record PersonalRecord) (PersonalRecord, error) {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO personal_records (exercise_name, weight_kg, reps, estimated_1rm, achieved_at)
		VALUES (?, ?, ?, ?, ?)`,
		record.ExerciseName, record.WeightKg, record.Reps, record.Estimated1RM,
		record.AchievedAt.UTC().Format(timestampFormat))
	if err != nil {
		return PersonalRecord{}, fmt.Errorf("insert personal record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return PersonalRecord{}, fmt.Errorf("last insert id: %w", err)
	}
	record.ID = int(id)
	return record, nil
}

// parseTimestamp parses a timestamp from a nullable database string.
func parseTimestamp(timestampStr sql.NullString) (*time.Time, error) {
	if !timestampStr.Valid {
		return nil, nil //nolint:nilnil // nil time is expected when the column is NULL.
	}
	parsed, err := time.Parse(timestampFormat, timestampStr.String)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp format: %w", err)
	}
	return &parsed, nil
}
