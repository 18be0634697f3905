package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coachdesk/coachdesk/internal/auth"
	"github.com/coachdesk/coachdesk/internal/telemetry/tracing"
	"github.com/coachdesk/coachdesk/internal/training"
	"github.com/coachdesk/coachdesk/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansRepo interface {
	Add(ctx context.Context, plan training.Plan) (*training.Plan, error)
	Get(ctx context.Context, id string) (*training.Plan, error)
	List(ctx context.Context) ([]training.Plan, error)
	Update(ctx context.Context, plan *training.Plan) error
	Delete(ctx context.Context, id string) error
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, id string)
}

type DeletePlanResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdatePlanResponse struct {
	UpdatedID string `json:"updatedId"`
}

type ListResponse struct {
	Plans []training.Plan `json:"plans"`
	Total int             `json:"total"`
}

type Handler struct {
	repo  plansRepo
	cache cacheInvalidator
}

func NewHandler(repo plansRepo, cache cacheInvalidator) *Handler {
	return &Handler{
		repo:  repo,
		cache: cache,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	plansRouter := mainRouter.PathPrefix("/plans").Subrouter()
	plansRouter.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-plan")
	plansRouter.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	plansRouter.HandleFunc("", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-plan")
	plansRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	plansRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.new")
	defer span.End()

	if !auth.CanManageRoster(auth.SessionFromContext(ctx)) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var plan training.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("new plan, unmarshal json params: %s", err)
		http.Error(w, "add plan failed", http.StatusBadRequest)
		return
	}

	if plan.Name == "" {
		http.Error(w, "error, plan name empty", http.StatusBadRequest)
		return
	}
	if plan.Difficulty != "" && !plan.Difficulty.IsValid() {
		http.Error(w, "error, invalid difficulty", http.StatusBadRequest)
		return
	}
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}

	addedPlan, err := handler.repo.Add(ctx, plan)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, plan already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add new plan [%s]: %s", plan.Name, err)
		http.Error(w, "error, failed to add new plan", http.StatusInternalServerError)
		return
	}

	addedPlanJson, err := json.Marshal(addedPlan)
	if err != nil {
		log.Errorf("failed to marshal new plan: %s", err)
		http.Error(w, "error, failed to add new plan", http.StatusInternalServerError)
		return
	}

	log.Debugf("new plan added: %s", addedPlan.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedPlanJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get plan %s: %s", id, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "failed to marshal plan", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	plans, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list plans error: %s", err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Plans: plans,
		Total: len(plans),
	})
	if err != nil {
		log.Errorf("marshal plans error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	if !auth.CanManageRoster(auth.SessionFromContext(ctx)) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var plan training.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Errorf("update plan, unmarshal json params: %s", err)
		http.Error(w, "update plan failed", http.StatusBadRequest)
		return
	}

	if plan.ID == "" || plan.Name == "" {
		http.Error(w, "error, plan id or name empty", http.StatusBadRequest)
		return
	}
	if plan.Difficulty != "" && !plan.Difficulty.IsValid() {
		http.Error(w, "error, invalid difficulty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &plan); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update plan [%s]: %s", plan.ID, err)
		http.Error(w, "error, failed to update plan", http.StatusInternalServerError)
		return
	}

	if handler.cache != nil {
		handler.cache.Invalidate(ctx, plan.ID)
	}

	updateRespJson, err := json.Marshal(UpdatePlanResponse{
		UpdatedID: plan.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("plan updated: [%s] %s", plan.ID, plan.Name)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	if !auth.CanManageRoster(auth.SessionFromContext(ctx)) {
		http.Error(w, "no can do", http.StatusForbidden)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			log.Debugf("plan %s not found", id)
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, plan still assigned to clients", http.StatusConflict)
			return
		}
		log.Errorf("failed to delete plan %s: %s", id, err)
		http.Error(w, "plan not deleted", http.StatusInternalServerError)
		return
	}

	if handler.cache != nil {
		handler.cache.Invalidate(ctx, id)
	}

	deleteRespJson, err := json.Marshal(DeletePlanResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
