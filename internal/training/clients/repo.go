package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrClientNotFound = errors.New("client not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, client training.Client) (_ *training.Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO client (id, display_name, assigned_plan_id) VALUES ($1, $2, NULLIF($3, ''));`,
		client.ID, client.DisplayName, client.AssignedPlanID,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("client.id", client.ID))

	return &client, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *training.Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", id))

	var client training.Client
	var assignedPlanID *string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, display_name, assigned_plan_id FROM client WHERE id = $1;`,
		id,
	).Scan(&client.ID, &client.DisplayName, &assignedPlanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if assignedPlanID != nil {
		client.AssignedPlanID = *assignedPlanID
	}

	return &client, nil
}

// ListClients returns the full roster, without session histories.
func (r *Repo) ListClients(ctx context.Context) (_ []training.Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, display_name, assigned_plan_id FROM client ORDER BY display_name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var roster []training.Client
	for rows.Next() {
		var client training.Client
		var assignedPlanID *string
		if err := rows.Scan(&client.ID, &client.DisplayName, &assignedPlanID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if assignedPlanID != nil {
			client.AssignedPlanID = *assignedPlanID
		}
		roster = append(roster, client)
	}

	span.SetAttributes(attribute.Int("roster.size", len(roster)))

	return roster, nil
}

// AssignPlan points a client at a plan. Past sessions keep the plan id they
// were recorded under; only future completion averages follow the new plan.
func (r *Repo) AssignPlan(ctx context.Context, clientID, planID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.assignplan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))
	span.SetAttributes(attribute.String("plan.id", planID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE client SET assigned_plan_id = NULLIF($1, '') WHERE id = $2;`,
		planID, clientID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}
