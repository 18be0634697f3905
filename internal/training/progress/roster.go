package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coachdesk/coachdesk/internal/telemetry/metrics"
	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"
	"github.com/coachdesk/coachdesk/internal/training/plans"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=roster_mocks_test.go -package=progress_test

type clientsRepo interface {
	ListClients(ctx context.Context) ([]training.Client, error)
	Get(ctx context.Context, id string) (*training.Client, error)
}

type sessionsLister interface {
	ListForClient(ctx context.Context, clientID string) ([]training.ProgressSession, error)
}

type planGetter interface {
	Get(ctx context.Context, id string) (*training.Plan, error)
}

// Aggregator materializes clients, sessions and plan snapshots from the
// store and produces roster rollups. All computation happens in Aggregate
// and ComputeClientStats over fully resolved inputs; the Aggregator only
// orchestrates the fetches.
type Aggregator struct {
	clients  clientsRepo
	sessions sessionsLister
	plans    planGetter
	workers  int
	instr    *metrics.Manager
}

func NewAggregator(
	clientsRepo clientsRepo,
	sessions sessionsLister,
	plans planGetter,
	workers int,
	instr *metrics.Manager,
) *Aggregator {
	if workers <= 0 {
		workers = 8
	}
	return &Aggregator{
		clients:  clientsRepo,
		sessions: sessions,
		plans:    plans,
		workers:  workers,
		instr:    instr,
	}
}

// ClientStats computes one client's stats for the given timeframe.
func (a *Aggregator) ClientStats(
	ctx context.Context,
	clientID string,
	window training.Timeframe,
	asOf time.Time,
) (_ *training.ClientStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progress.clientstats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))
	span.SetAttributes(attribute.String("window", window.String()))

	client, err := a.clients.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	client.Sessions, err = a.sessions.ListForClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var plan *training.Plan
	if client.AssignedPlanID != "" {
		plan, err = a.resolvePlan(ctx, client.AssignedPlanID)
		if err != nil {
			return nil, err
		}
	}

	stats := ComputeClientStats(*client, plan, window, asOf)
	return &stats, nil
}

// RosterStats computes the full coach-facing rollup.
//
// Per-client session fetches fan out over a bounded worker pool and fan in
// before any aggregation starts: every referenced plan must be resolved
// first, otherwise the unknown-plan fallback could fire for a plan whose
// fetch was simply still in flight. On cancellation mid-fetch the stats for
// the already resolved clients are returned together with a
// PartialResultError, never an unflagged incomplete result.
func (a *Aggregator) RosterStats(
	ctx context.Context,
	window training.Timeframe,
	asOf time.Time,
) (_ *training.RosterStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progress.rosterstats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("window", window.String()))

	defer func(begin time.Time) {
		a.instr.HistRosterAggregationDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	roster, err := a.clients.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	resolved, fetchErr := a.fetchSessions(ctx, roster)

	if fetchErr != nil && !isCancellation(fetchErr) {
		return nil, fmt.Errorf("fetch sessions: %w", fetchErr)
	}

	planMap, err := a.resolvePlans(ctx, resolved)
	if err != nil {
		if isCancellation(err) {
			fetchErr = err
			planMap = map[string]*training.Plan{}
		} else {
			return nil, err
		}
	}

	stats := Aggregate(resolved, planMap, window, asOf)

	a.instr.CounterRosterAggregations.Inc()

	if fetchErr != nil {
		stats.Partial = true
		a.instr.CounterPartialAggregations.Inc()
		return &stats, &PartialResultError{Stats: &stats, Cause: fetchErr}
	}

	span.SetAttributes(attribute.Int("roster.size", len(resolved)))
	return &stats, nil
}

// fetchSessions loads the session history of every client concurrently,
// bounded by the configured worker count. It returns the clients whose
// sessions were fully resolved; a cancellation error is reported so the
// caller can flag the result as partial.
func (a *Aggregator) fetchSessions(
	ctx context.Context,
	roster []training.Client,
) ([]training.Client, error) {
	jobs := make(chan int)
	done := make([]bool, len(roster))
	errs := make([]error, len(roster))

	var wg sync.WaitGroup
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					errs[i] = err
					continue
				}
				sessions, err := a.sessions.ListForClient(ctx, roster[i].ID)
				if err != nil {
					errs[i] = err
					continue
				}
				roster[i].Sessions = sessions
				done[i] = true
			}
		}()
	}

feed:
	for i := range roster {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	resolved := make([]training.Client, 0, len(roster))
	var firstErr error
	for i := range roster {
		if done[i] {
			resolved = append(resolved, roster[i])
			continue
		}
		if errs[i] == nil {
			// never handed to a worker, the feed loop was cancelled
			errs[i] = ctx.Err()
		}
		if firstErr == nil || (isCancellation(firstErr) && !isCancellation(errs[i])) {
			firstErr = errs[i]
		}
	}

	return resolved, firstErr
}

// resolvePlans fetches a snapshot of every distinct assigned plan, exactly
// once per plan id. A plan lookup miss maps to a nil entry: the aggregation
// degrades that client to the raw-id fallback instead of failing the batch.
func (a *Aggregator) resolvePlans(
	ctx context.Context,
	roster []training.Client,
) (map[string]*training.Plan, error) {
	planMap := make(map[string]*training.Plan)
	for _, c := range roster {
		if c.AssignedPlanID == "" {
			continue
		}
		if _, ok := planMap[c.AssignedPlanID]; ok {
			continue
		}
		plan, err := a.resolvePlan(ctx, c.AssignedPlanID)
		if err != nil {
			return nil, err
		}
		planMap[c.AssignedPlanID] = plan
	}
	return planMap, nil
}

func (a *Aggregator) resolvePlan(ctx context.Context, planID string) (*training.Plan, error) {
	plan, err := a.plans.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan %s: %w", planID, err)
	}
	return plan, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
