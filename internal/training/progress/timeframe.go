package progress

import (
	"time"

	"github.com/coachdesk/coachdesk/internal/training"
)

const (
	weekWindow  = 7 * 24 * time.Hour
	monthWindow = 30 * 24 * time.Hour // fixed 30 days, not a calendar month
)

// FilterSessions restricts sessions to the given timeframe relative to asOf.
// The lower bound is inclusive. Sessions dated after asOf pass the filter on
// purpose: a session recorded on a device with a slightly fast clock must not
// vanish from the report.
func FilterSessions(
	sessions []training.ProgressSession,
	window training.Timeframe,
	asOf time.Time,
) []training.ProgressSession {
	if window == training.TimeframeAll {
		return sessions
	}

	var cutoff time.Time
	switch window {
	case training.TimeframeWeek:
		cutoff = asOf.Add(-weekWindow)
	case training.TimeframeMonth:
		cutoff = asOf.Add(-monthWindow)
	default:
		return sessions
	}

	filtered := make([]training.ProgressSession, 0, len(sessions))
	for _, s := range sessions {
		if !s.Date.Before(cutoff) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
