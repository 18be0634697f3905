package training

import "time"

// ClientStats is derived per client, recomputed on demand from the session
// set plus the timeframe filter. Never cached or mutated in place.
type ClientStats struct {
	ClientID    string `json:"clientId"`
	DisplayName string `json:"displayName"`
	PlanID      string `json:"planId,omitempty"`
	PlanName    string `json:"planName,omitempty"`

	TotalSessions           int        `json:"totalSessions"`
	TotalExercisesCompleted int        `json:"totalExercisesCompleted"`
	AverageCompletionPct    float64    `json:"averageCompletionPct"`
	StreakDays              int        `json:"streakDays"`
	LastSessionDate         *time.Time `json:"lastSessionDate,omitempty"`
	IsActive                bool       `json:"isActive"`
}

// PlanStats is derived per plan, aggregated over all clients whose current
// assignment equals the plan.
type PlanStats struct {
	PlanID               string  `json:"planId"`
	PlanName             string  `json:"planName"`
	AssignedCount        int     `json:"assignedCount"`
	ActiveCount          int     `json:"activeCount"`
	AverageCompletionPct float64 `json:"averageCompletionPct"`
}

// OverallStats aggregates the whole roster. AverageCompletion is the mean of
// per-client averages: every client weighs the same regardless of how many
// sessions they logged.
type OverallStats struct {
	TotalClients      int     `json:"totalClients"`
	ActiveClients     int     `json:"activeClients"`
	TotalSessions     int     `json:"totalSessions"`
	AverageCompletion float64 `json:"averageCompletion"`
}

// RosterStats is the coach-facing rollup over all clients.
// Partial is set when an aggregation pass was cancelled before every client
// was resolved; the stats then cover only the resolved subset.
type RosterStats struct {
	ClientStats []ClientStats `json:"clientStats"`
	PlanStats   []PlanStats   `json:"planStats"`
	Overall     OverallStats  `json:"overall"`
	Partial     bool          `json:"partial,omitempty"`
}
