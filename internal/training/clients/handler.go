package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachdesk/coachdesk/internal/auth"
	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"
	"github.com/coachdesk/coachdesk/internal/training/plans"
	"github.com/coachdesk/coachdesk/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=clients_test

type clientsRepo interface {
	Add(ctx context.Context, client training.Client) (*training.Client, error)
	Get(ctx context.Context, id string) (*training.Client, error)
	ListClients(ctx context.Context) ([]training.Client, error)
	AssignPlan(ctx context.Context, clientID, planID string) error
}

type planGetter interface {
	Get(ctx context.Context, id string) (*training.Plan, error)
}

type ListResponse struct {
	Clients []training.Client `json:"clients"`
	Total   int               `json:"total"`
}

type AssignPlanRequest struct {
	PlanID string `json:"planId"`
}

type Handler struct {
	repo  clientsRepo
	plans planGetter
}

func NewHandler(repo clientsRepo, plans planGetter) *Handler {
	return &Handler{
		repo:  repo,
		plans: plans,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	clientsRouter := mainRouter.PathPrefix("/clients").Subrouter()
	clientsRouter.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-client")
	clientsRouter.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-clients")
	clientsRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-client")
	clientsRouter.HandleFunc("/{id}/plan", handler.HandleAssignPlan).Methods("PUT", "OPTIONS").Name("assign-plan")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.new")
	defer span.End()

	if !auth.CanManageRoster(auth.SessionFromContext(ctx)) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var client training.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Tracef("new client, unmarshal json params: %s", err)
		http.Error(w, "add client failed", http.StatusBadRequest)
		return
	}

	if client.DisplayName == "" {
		http.Error(w, "error, display name empty", http.StatusBadRequest)
		return
	}
	if client.ID == "" {
		client.ID = uuid.NewString()
	}

	addedClient, err := handler.repo.Add(ctx, client)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, client already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add new client [%s]: %s", client.DisplayName, err)
		http.Error(w, "error, failed to add new client", http.StatusInternalServerError)
		return
	}

	addedClientJson, err := json.Marshal(addedClient)
	if err != nil {
		log.Errorf("failed to marshal new client: %s", err)
		http.Error(w, "error, failed to add new client", http.StatusInternalServerError)
		return
	}

	log.Debugf("new client added: %s", addedClient.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedClientJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if !auth.CanViewClient(auth.SessionFromContext(ctx), id) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	client, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get client %s: %s", id, err)
		http.Error(w, "failed to get client", http.StatusInternalServerError)
		return
	}

	clientJson, err := json.Marshal(client)
	if err != nil {
		log.Errorf("failed to marshal client: %s", err)
		http.Error(w, "failed to marshal client", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, clientJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.list")
	defer span.End()

	if !auth.CanManageRoster(auth.SessionFromContext(ctx)) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	roster, err := handler.repo.ListClients(ctx)
	if err != nil {
		log.Errorf("list clients error: %s", err)
		http.Error(w, "failed to get clients", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Clients: roster,
		Total:   len(roster),
	})
	if err != nil {
		log.Errorf("marshal clients error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleAssignPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.assignplan")
	defer span.End()

	if !auth.CanManageRoster(auth.SessionFromContext(ctx)) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	clientID := vars["id"]
	if clientID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var assignReq AssignPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		log.Tracef("assign plan, unmarshal json params: %s", err)
		http.Error(w, "assign plan failed", http.StatusBadRequest)
		return
	}

	// an empty plan id unassigns the client
	if assignReq.PlanID != "" {
		if _, err := handler.plans.Get(ctx, assignReq.PlanID); err != nil {
			if errors.Is(err, plans.ErrPlanNotFound) {
				http.Error(w, "plan not found", http.StatusNotFound)
				return
			}
			log.Errorf("assign plan, get plan %s: %s", assignReq.PlanID, err)
			http.Error(w, "assign plan failed", http.StatusInternalServerError)
			return
		}
	}

	if err := handler.repo.AssignPlan(ctx, clientID, assignReq.PlanID); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to assign plan [%s] to client [%s]: %s", assignReq.PlanID, clientID, err)
		http.Error(w, "assign plan failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("plan [%s] assigned to client [%s]", assignReq.PlanID, clientID)
	pkg.WriteJSONResponseOK(w, `{"assigned": true}`)
}
