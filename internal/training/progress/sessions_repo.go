package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// SessionsRepo is the append-only session store. Sessions are never updated
// or deleted through this repo; corrections happen by recording a new one.
type SessionsRepo struct {
	db *pgxpool.Pool
}

func NewSessionsRepo(db *pgxpool.Pool) *SessionsRepo {
	return &SessionsRepo{
		db: db,
	}
}

func (r *SessionsRepo) Append(ctx context.Context, session training.ProgressSession) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.SessionID))
	span.SetAttributes(attribute.String("client.id", session.ClientID))

	completedJson, err := json.Marshal(session.CompletedExerciseIDs)
	if err != nil {
		return fmt.Errorf("marshal completed exercise ids: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO training_session
				(id, client_id, plan_id, session_date, completed_exercise_ids)
				VALUES ($1, $2, $3, $4, $5);`,
		session.SessionID, session.ClientID, session.PlanID, session.Date, completedJson,
	)
	return err
}

// ListForClient returns a client's full session history, oldest first.
func (r *SessionsRepo) ListForClient(ctx context.Context, clientID string) (_ []training.ProgressSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listforclient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, client_id, plan_id, session_date, completed_exercise_ids
				FROM training_session
				WHERE client_id = $1
				ORDER BY session_date;`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var sessions []training.ProgressSession
	for rows.Next() {
		var session training.ProgressSession
		var completedJson []byte
		if err := rows.Scan(
			&session.SessionID, &session.ClientID, &session.PlanID, &session.Date, &completedJson,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(completedJson) > 0 {
			if err := json.Unmarshal(completedJson, &session.CompletedExerciseIDs); err != nil {
				return nil, fmt.Errorf("unmarshal completed exercise ids: %w", err)
			}
		}
		sessions = append(sessions, session)
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))

	return sessions, nil
}
