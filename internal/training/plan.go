package training

// Exercise is a single prescribed exercise within a training plan.
// Identity is ID; a plan never contains two exercises with the same ID.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Notes       string `json:"notes,omitempty"`
}

// Plan is a training plan authored by a coach or admin.
// The engine treats plans as read-only snapshots: exercises are read once
// per calculation pass and never mutated.
type Plan struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Exercises     []Exercise `json:"exercises"`
	Difficulty    Difficulty `json:"difficulty"`
	DurationWeeks int        `json:"durationWeeks"`
}

// ExerciseIDSet returns the set of exercise ids in the plan.
func (p *Plan) ExerciseIDSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(p.Exercises))
	for _, e := range p.Exercises {
		ids[e.ID] = struct{}{}
	}
	return ids
}

// Difficulty can be one of:
//   - beginner
//   - intermediate
//   - advanced
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) String() string {
	return string(d)
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}
