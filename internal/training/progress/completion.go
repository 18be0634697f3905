package progress

import "github.com/coachdesk/coachdesk/internal/training"

// SessionCompletionPct returns the completion percentage of a single session
// against a plan snapshot, in [0,100]. The denominator is the number of plan
// exercises; completed ids absent from the snapshot (e.g. an exercise later
// removed from the plan) are excluded from the numerator, so completion
// against an edited plan never exceeds 100.
//
// A plan with zero exercises yields 0, and a nil plan yields 0. Neither is an
// error: calculators return defined values for every documented edge case.
func SessionCompletionPct(session training.ProgressSession, plan *training.Plan) float64 {
	if plan == nil || len(plan.Exercises) == 0 {
		return 0
	}

	planIDs := plan.ExerciseIDSet()
	completed := 0
	for _, id := range session.CompletedExerciseIDs {
		if _, ok := planIDs[id]; ok {
			completed++
		}
	}

	return float64(completed) / float64(len(plan.Exercises)) * 100
}

// AverageCompletionPct returns the arithmetic mean of SessionCompletionPct
// over the given sessions. An empty session set yields 0.
func AverageCompletionPct(sessions []training.ProgressSession, plan *training.Plan) float64 {
	if len(sessions) == 0 {
		return 0
	}

	var sum float64
	for _, s := range sessions {
		sum += SessionCompletionPct(s, plan)
	}
	return sum / float64(len(sessions))
}
