package progress

import "time"

type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) day {
	y, m, d := t.Date()
	return day{year: y, month: m, day: d}
}

// StreakDays returns the number of consecutive calendar days ending at asOf
// that each contain at least one session. Timestamps are normalized to their
// local calendar date; time of day is discarded, and multiple sessions on the
// same date count as a single streak day.
//
// No session on the asOf date yields 0, even if a long run of prior days
// exists: the streak answers "consecutive days ending today", not "ending at
// the last session". Future-dated sessions are never reached by the backward
// walk and are therefore ignored.
func StreakDays(sessionDates []time.Time, asOf time.Time) int {
	if len(sessionDates) == 0 {
		return 0
	}

	trainedOn := make(map[day]struct{}, len(sessionDates))
	for _, d := range sessionDates {
		trainedOn[dayOf(d)] = struct{}{}
	}

	streak := 0
	for {
		cursor := dayOf(asOf.AddDate(0, 0, -streak))
		if _, ok := trainedOn[cursor]; !ok {
			break
		}
		streak++
	}
	return streak
}
