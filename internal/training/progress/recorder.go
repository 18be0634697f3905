package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=recorder_mocks_test.go -package=progress_test

type sessionAppender interface {
	Append(ctx context.Context, session training.ProgressSession) error
}

// Recorder validates and records a single session for a (client, plan) pair.
// Every successful save appends a brand new session; there is no "latest
// session per plan" replacement, even if a presentation layer chooses to only
// show the most recent one.
type Recorder struct {
	sessions sessionAppender

	// injectable for unit and dev testing
	NowFunc          func() time.Time
	NewSessionIDFunc func() string
}

func NewRecorder(sessions sessionAppender) *Recorder {
	return &Recorder{
		sessions:         sessions,
		NowFunc:          time.Now,
		NewSessionIDFunc: uuid.NewString,
	}
}

// Record validates the submission against the caller-supplied plan snapshot,
// stamps it with a fresh session id and the current time, and appends it.
// The recorder does not fetch the plan itself.
//
// Completed ids that are not part of the plan snapshot are preserved as
// submitted; completion calculations exclude them from their denominators.
func (r *Recorder) Record(
	ctx context.Context,
	clientID string,
	plan *training.Plan,
	completedExerciseIDs []string,
) (_ *training.ProgressSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recorder.progress.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	if len(completedExerciseIDs) == 0 {
		return nil, ErrEmptySubmission
	}
	if plan == nil {
		return nil, ErrUnknownPlan
	}

	span.SetAttributes(attribute.String("plan.id", plan.ID))

	session := training.ProgressSession{
		SessionID:            r.NewSessionIDFunc(),
		PlanID:               plan.ID,
		ClientID:             clientID,
		Date:                 r.NowFunc(),
		CompletedExerciseIDs: dedupe(completedExerciseIDs),
	}

	if err := r.sessions.Append(ctx, session); err != nil {
		return nil, fmt.Errorf("append session: %w", err)
	}

	return &session, nil
}

// dedupe keeps the first occurrence of each id, preserving submission order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
