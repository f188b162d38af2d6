package progress

import (
	"time"
)

// Calendar buckets completed sessions by calendar date, evaluated in the
// given location so that UTC-stored rows land on the caller's calendar days.
// PR dates are computed once up front; a bucket's HasPR flag is set when any
// personal record was achieved on that date.
func Calendar(sessions []SessionRecord, records []PersonalRecord, loc *time.Location) map[time.Time]DayAggregate {
	prDates := make(map[time.Time]struct{}, len(records))
	for _, record := range records {
		if record.AchievedAt.IsZero() {
			continue
		}
		prDates[dateOf(record.AchievedAt.In(loc))] = struct{}{}
	}

	calendar := make(map[time.Time]DayAggregate)
	for _, session := range sessions {
		if session.CompletedAt == nil {
			continue
		}
		date := dateOf(session.CompletedAt.In(loc))

		aggregate := calendar[date]
		aggregate.WorkoutCount++
		aggregate.TotalVolumeKg += session.TotalVolumeKg
		aggregate.ExerciseCount += session.ExerciseCount
		aggregate.SessionIDs = append(aggregate.SessionIDs, session.ID)
		_, aggregate.HasPR = prDates[date]
		calendar[date] = aggregate
	}
	return calendar
}
