package progress

import (
	"sort"
	"time"
)

const day = 24 * time.Hour

// Streaks computes consecutive-day streaks and weekly/monthly counts from
// session history. The reference day is passed explicitly so that callers
// (and tests) control what "today" means; pass time.Now() for live data.
// Session timestamps are converted into today's location before date
// truncation, so UTC-stored rows land on the caller's calendar days.
//
// Empty input yields an all-zero summary with DaysSinceLastWorkout = -1.
func Streaks(sessions []SessionRecord, today time.Time) Summary {
	dates := uniqueWorkoutDates(sessions, today.Location())
	if len(dates) == 0 {
		return Summary{
			CurrentStreak:        0,
			LongestStreak:        0,
			LastWorkoutDate:      time.Time{},
			DaysSinceLastWorkout: -1,
			ThisWeekWorkouts:     0,
			ThisMonthWorkouts:    0,
		}
	}

	todayDate := dateOf(today)
	mostRecent := dates[len(dates)-1]

	return Summary{
		CurrentStreak:        currentStreak(dates, todayDate),
		LongestStreak:        longestStreak(dates),
		LastWorkoutDate:      mostRecent,
		DaysSinceLastWorkout: int(todayDate.Sub(mostRecent) / day),
		ThisWeekWorkouts:     countInRange(dates, mondayOf(todayDate), todayDate),
		ThisMonthWorkouts:    countInRange(dates, firstOfMonth(todayDate), todayDate),
	}
}

// uniqueWorkoutDates returns the sorted ascending unique calendar dates of
// all completed sessions, evaluated in the given location.
func uniqueWorkoutDates(sessions []SessionRecord, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, session := range sessions {
		if session.CompletedAt == nil {
			continue
		}
		seen[dateOf(session.CompletedAt.In(loc))] = struct{}{}
	}

	dates := make([]time.Time, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// currentStreak counts consecutive workout days ending today, or ending
// yesterday when today has no workout yet.
func currentStreak(dates []time.Time, todayDate time.Time) int {
	present := make(map[time.Time]struct{}, len(dates))
	for _, date := range dates {
		present[date] = struct{}{}
	}

	cursor := todayDate
	if _, ok := present[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := present[cursor]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak scans the sorted unique dates and tracks the longest run of
// consecutive days.
func longestStreak(dates []time.Time) int {
	longest := 0
	run := 0
	for i, date := range dates {
		if i > 0 && dates[i-1].AddDate(0, 0, 1).Equal(date) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// countInRange counts dates within [from, to] inclusive.
func countInRange(dates []time.Time, from, to time.Time) int {
	count := 0
	for _, date := range dates {
		if !date.Before(from) && !date.After(to) {
			count++
		}
	}
	return count
}

// mondayOf returns the Monday of the week containing the given date. The
// week starts on Monday regardless of locale.
func mondayOf(date time.Time) time.Time {
	offset := int(time.Monday - date.Weekday())
	if offset > 0 {
		// Sunday: go back to the previous Monday.
		offset = -6
	}
	return date.AddDate(0, 0, offset)
}

// firstOfMonth returns the first day of the month containing the given date.
func firstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
