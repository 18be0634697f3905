package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coachdesk/coachdesk/internal/auth"
	"github.com/coachdesk/coachdesk/internal/telemetry/metrics"
	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"
	"github.com/coachdesk/coachdesk/internal/training/plans"
	"github.com/coachdesk/coachdesk/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type sessionRecorder interface {
	Record(ctx context.Context, clientID string, plan *training.Plan, completedExerciseIDs []string) (*training.ProgressSession, error)
}

type statsProvider interface {
	ClientStats(ctx context.Context, clientID string, window training.Timeframe, asOf time.Time) (*training.ClientStats, error)
	RosterStats(ctx context.Context, window training.Timeframe, asOf time.Time) (*training.RosterStats, error)
}

type handlerPlanGetter interface {
	Get(ctx context.Context, id string) (*training.Plan, error)
}

type handlerClientGetter interface {
	Get(ctx context.Context, id string) (*training.Client, error)
}

type NewSessionRequest struct {
	ClientID             string   `json:"clientId"`
	CompletedExerciseIDs []string `json:"completedExerciseIds"`
}

type Handler struct {
	recorder sessionRecorder
	stats    statsProvider
	plans    handlerPlanGetter
	clients  handlerClientGetter
	instr    *metrics.Manager
}

func NewHandler(
	recorder sessionRecorder,
	stats statsProvider,
	plans handlerPlanGetter,
	clients handlerClientGetter,
	instr *metrics.Manager,
) *Handler {
	return &Handler{
		recorder: recorder,
		stats:    stats,
		plans:    plans,
		clients:  clients,
		instr:    instr,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	progressRouter := mainRouter.PathPrefix("/progress").Subrouter()
	progressRouter.HandleFunc("/session", handler.HandleNewSession).Methods("POST", "OPTIONS").Name("new-session")
	progressRouter.HandleFunc("/client/{id}/stats", handler.HandleClientStats).Methods("GET", "OPTIONS").Name("client-stats")
	progressRouter.HandleFunc("/roster/stats", handler.HandleRosterStats).Methods("GET", "OPTIONS").Name("roster-stats")
}

func (handler *Handler) HandleNewSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.newsession")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var sessionReq NewSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&sessionReq); err != nil {
		log.Tracef("new session, unmarshal json params: %s", err)
		http.Error(w, "record session failed", http.StatusBadRequest)
		return
	}

	if sessionReq.ClientID == "" {
		http.Error(w, "error, client id empty", http.StatusBadRequest)
		return
	}

	if !auth.CanRecordFor(auth.SessionFromContext(ctx), sessionReq.ClientID) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	client, err := handler.clients.Get(ctx, sessionReq.ClientID)
	if err != nil {
		log.Errorf("new session, get client %s: %s", sessionReq.ClientID, err)
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	// resolve the currently assigned plan; the recorder validates against
	// this snapshot and stores the plan id alongside the session
	var plan *training.Plan
	if client.AssignedPlanID != "" {
		plan, err = handler.plans.Get(ctx, client.AssignedPlanID)
		if err != nil && !errors.Is(err, plans.ErrPlanNotFound) {
			log.Errorf("new session, get plan %s: %s", client.AssignedPlanID, err)
			http.Error(w, "record session failed", http.StatusInternalServerError)
			return
		}
	}

	session, err := handler.recorder.Record(ctx, client.ID, plan, sessionReq.CompletedExerciseIDs)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptySubmission):
			http.Error(w, "error, no completed exercises submitted", http.StatusBadRequest)
		case errors.Is(err, ErrUnknownPlan):
			http.Error(w, "error, client has no known plan assigned", http.StatusBadRequest)
		default:
			log.Errorf("failed to record session for client %s: %s", client.ID, err)
			http.Error(w, "record session failed", http.StatusInternalServerError)
		}
		return
	}

	handler.instr.CounterSessionsRecorded.Inc()

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "record session failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new session recorded: %s [client %s]", session.SessionID, session.ClientID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleClientStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.clientstats")
	defer span.End()

	vars := mux.Vars(r)
	clientID := vars["id"]
	if clientID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if !auth.CanViewClient(auth.SessionFromContext(ctx), clientID) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	window, ok := timeframeFromQuery(r)
	if !ok {
		http.Error(w, "error, invalid window", http.StatusBadRequest)
		return
	}

	stats, err := handler.stats.ClientStats(ctx, clientID, window, time.Now())
	if err != nil {
		log.Errorf("failed to get client stats %s: %s", clientID, err)
		http.Error(w, "failed to get client stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal client stats: %s", err)
		http.Error(w, "failed to marshal client stats", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleRosterStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.rosterstats")
	defer span.End()

	if !auth.CanManageRoster(auth.SessionFromContext(ctx)) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	window, ok := timeframeFromQuery(r)
	if !ok {
		http.Error(w, "error, invalid window", http.StatusBadRequest)
		return
	}

	stats, err := handler.stats.RosterStats(ctx, window, time.Now())
	var partialErr *PartialResultError
	if err != nil && !errors.As(err, &partialErr) {
		log.Errorf("failed to get roster stats: %s", err)
		http.Error(w, "failed to get roster stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal roster stats: %s", err)
		http.Error(w, "failed to marshal roster stats", http.StatusInternalServerError)
		return
	}

	if partialErr != nil {
		log.Warnf("roster stats degraded to partial result: %s", partialErr.Cause)
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusPartialContent)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func timeframeFromQuery(r *http.Request) (training.Timeframe, bool) {
	windowStr := r.URL.Query().Get("window")
	if windowStr == "" {
		return training.TimeframeAll, true
	}
	window := training.Timeframe(windowStr)
	if !window.IsValid() {
		return "", false
	}
	return window, true
}
