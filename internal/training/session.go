package training

import "time"

// ProgressSession is one recorded workout attempt against a plan.
// Sessions are append-only: once recorded they are never mutated, and the
// session-plan linkage is immutable even if the client is later reassigned.
type ProgressSession struct {
	SessionID            string    `json:"sessionId"`
	PlanID               string    `json:"planId"`
	ClientID             string    `json:"clientId"`
	Date                 time.Time `json:"date"`
	CompletedExerciseIDs []string  `json:"completedExerciseIds"`
}

// CompletedSet returns the completed exercise ids as a set.
func (s *ProgressSession) CompletedSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.CompletedExerciseIDs))
	for _, id := range s.CompletedExerciseIDs {
		ids[id] = struct{}{}
	}
	return ids
}
