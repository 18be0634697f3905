package progress

import (
	"sort"
	"time"

	"github.com/coachdesk/coachdesk/internal/training"
)

// activeWindow marks a client as active when their last session falls within
// this horizon, regardless of the requested reporting timeframe.
const activeWindow = 7 * 24 * time.Hour

// ComputeClientStats derives a client's stats for the given timeframe.
//
// The timeframe scopes session counts and the completion average. The streak
// is always computed over the full session history: it answers "how
// consistent are they right now", not "within this reporting window". The
// completion average is computed against the client's currently assigned plan
// even for sessions recorded under an earlier assignment.
//
// A nil plan means the assigned plan could not be resolved; the stats then
// carry the raw plan id as the plan name and a 0 completion average.
func ComputeClientStats(
	client training.Client,
	plan *training.Plan,
	window training.Timeframe,
	asOf time.Time,
) training.ClientStats {
	filtered := FilterSessions(client.Sessions, window, asOf)

	totalExercisesCompleted := 0
	for _, s := range filtered {
		// raw count, deliberately not intersected with the plan
		totalExercisesCompleted += len(s.CompletedExerciseIDs)
	}

	allDates := make([]time.Time, 0, len(client.Sessions))
	for _, s := range client.Sessions {
		allDates = append(allDates, s.Date)
	}

	var lastSessionDate *time.Time
	for _, s := range client.Sessions {
		if lastSessionDate == nil || s.Date.After(*lastSessionDate) {
			d := s.Date
			lastSessionDate = &d
		}
	}

	isActive := false
	if lastSessionDate != nil {
		isActive = !lastSessionDate.Before(asOf.Add(-activeWindow))
	}

	stats := training.ClientStats{
		ClientID:                client.ID,
		DisplayName:             client.DisplayName,
		TotalSessions:           len(filtered),
		TotalExercisesCompleted: totalExercisesCompleted,
		AverageCompletionPct:    AverageCompletionPct(filtered, plan),
		StreakDays:              StreakDays(allDates, asOf),
		LastSessionDate:         lastSessionDate,
		IsActive:                isActive,
	}

	if plan != nil {
		stats.PlanID = plan.ID
		stats.PlanName = plan.Name
	} else if client.AssignedPlanID != "" {
		// unresolved plan reference degrades to the raw id, it must not
		// fail the whole roster report
		stats.PlanID = client.AssignedPlanID
		stats.PlanName = client.AssignedPlanID
	}

	return stats
}

// Aggregate produces the coach-facing rollup over fully materialized inputs.
// It is deterministic and performs no I/O; callers resolve every referenced
// plan before invoking it.
//
// Plan-level completion is the unweighted mean of the per-client averages
// (mean of means): a client with two sessions weighs the same as a client
// with eighty. The same holds for the overall average.
func Aggregate(
	clients []training.Client,
	plans map[string]*training.Plan,
	window training.Timeframe,
	asOf time.Time,
) training.RosterStats {
	clientStats := make([]training.ClientStats, 0, len(clients))
	for _, c := range clients {
		clientStats = append(clientStats, ComputeClientStats(c, plans[c.AssignedPlanID], window, asOf))
	}

	plan2clients := make(map[string][]training.ClientStats)
	for i, c := range clients {
		if c.AssignedPlanID == "" {
			continue
		}
		plan2clients[c.AssignedPlanID] = append(plan2clients[c.AssignedPlanID], clientStats[i])
	}

	planIDs := make([]string, 0, len(plan2clients))
	for planID := range plan2clients {
		planIDs = append(planIDs, planID)
	}
	sort.Strings(planIDs)

	planStats := make([]training.PlanStats, 0, len(planIDs))
	for _, planID := range planIDs {
		assigned := plan2clients[planID]

		planName := planID
		if plan := plans[planID]; plan != nil {
			planName = plan.Name
		}

		activeCount := 0
		var completionSum float64
		for _, cs := range assigned {
			if cs.IsActive {
				activeCount++
			}
			completionSum += cs.AverageCompletionPct
		}

		planStats = append(planStats, training.PlanStats{
			PlanID:               planID,
			PlanName:             planName,
			AssignedCount:        len(assigned),
			ActiveCount:          activeCount,
			AverageCompletionPct: completionSum / float64(len(assigned)),
		})
	}

	overall := training.OverallStats{
		TotalClients: len(clients),
	}
	var completionSum float64
	for _, cs := range clientStats {
		if cs.IsActive {
			overall.ActiveClients++
		}
		overall.TotalSessions += cs.TotalSessions
		completionSum += cs.AverageCompletionPct
	}
	if len(clientStats) > 0 {
		overall.AverageCompletion = completionSum / float64(len(clientStats))
	}

	return training.RosterStats{
		ClientStats: clientStats,
		PlanStats:   planStats,
		Overall:     overall,
	}
}
