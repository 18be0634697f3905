package training

// Client is a training client with an optional currently assigned plan.
// Historical sessions may reference plans that are no longer assigned.
type Client struct {
	ID             string            `json:"id"`
	DisplayName    string            `json:"displayName"`
	AssignedPlanID string            `json:"assignedPlanId,omitempty"`
	Sessions       []ProgressSession `json:"sessions,omitempty"`
}
