package progress

import (
	"errors"
	"fmt"

	"github.com/coachdesk/coachdesk/internal/training"
)

var (
	// ErrEmptySubmission is returned when a session is recorded with no
	// completed exercises. An empty save is rejected, never silently dropped.
	ErrEmptySubmission = errors.New("empty submission: no completed exercises")

	// ErrUnknownPlan is returned when a recorded session references a plan
	// that is not present in the caller-supplied snapshot.
	ErrUnknownPlan = errors.New("unknown plan")

	// ErrSessionNotFound is returned on a session lookup miss.
	ErrSessionNotFound = errors.New("session not found")
)

// PartialResultError is returned when a roster aggregation pass was cancelled
// or timed out mid-fetch. Stats carries whatever clients were fully resolved,
// with the Partial flag set.
type PartialResultError struct {
	Stats *training.RosterStats
	Cause error
}

func (e *PartialResultError) Error() string {
	return fmt.Sprintf("partial roster result (%d clients resolved): %s",
		len(e.Stats.ClientStats), e.Cause)
}

func (e *PartialResultError) Unwrap() error {
	return e.Cause
}
