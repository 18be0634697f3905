package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlanNotFound = errors.New("plan not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, plan training.Plan) (_ *training.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(plan.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO plan
				(id, name, difficulty, duration_weeks, exercises)
				VALUES ($1, $2, $3, $4, $5);`,
		plan.ID, plan.Name, plan.Difficulty.String(), plan.DurationWeeks, exercisesJson,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("plan.id", plan.ID))

	return &plan, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *training.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, difficulty, duration_weeks, exercises FROM plan WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, err
	}

	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}

	return &plans[0], nil
}

// List returns all plans, newest first.
func (r *Repo) List(ctx context.Context) (_ []training.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, difficulty, duration_weeks, exercises FROM plan ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2plans(rows)
}

func (r *Repo) Update(ctx context.Context, plan *training.Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID))

	exercisesJson, err := json.Marshal(plan.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE plan SET name = $1, difficulty = $2, duration_weeks = $3, exercises = $4 WHERE id = $5;`,
		plan.Name, plan.Difficulty.String(), plan.DurationWeeks, exercisesJson, plan.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM plan WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]training.Plan, error) {
	var plans []training.Plan
	for rows.Next() {
		var plan training.Plan
		var difficulty string
		var exercisesJson []byte
		if err := rows.Scan(
			&plan.ID, &plan.Name, &difficulty, &plan.DurationWeeks, &exercisesJson,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plan.Difficulty = training.Difficulty(difficulty)
		if len(exercisesJson) > 0 {
			if err := json.Unmarshal(exercisesJson, &plan.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises: %w", err)
			}
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
