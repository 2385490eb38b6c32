package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dstanisic/liftcoach/internal/telemetry/metrics"
	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"
	"github.com/dstanisic/liftcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type rulesRepo interface {
	CreateRule(ctx context.Context, rule Rule) error
	GetRule(ctx context.Context, exerciseID string) (Rule, error)
	UpdateRule(ctx context.Context, exerciseID string, update RuleUpdate) error
	DeleteRule(ctx context.Context, exerciseID string) error
}

type stateRepo interface {
	Get(ctx context.Context, userID, exerciseID string) (UserProgression, error)
	RecordWeight(ctx context.Context, userID, exerciseID string, newWeight float64) (UserProgression, error)
}

type weightSuggester interface {
	SuggestWeight(ctx context.Context, params SuggestParams) (Suggestion, error)
}

type Handler struct {
	rules   rulesRepo
	state   stateRepo
	advisor weightSuggester
	metrics *metrics.Manager
}

func NewHandler(
	rules rulesRepo,
	state stateRepo,
	advisor weightSuggester,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		rules:   rules,
		state:   state,
		advisor: advisor,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleCreateRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.rules.create")
	defer span.End()

	var rule Rule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		log.Errorf("create rule, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}

	if err := rule.Validate(); err != nil {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, err.Error(), http.StatusBadRequest)
		return
	}

	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now()
	}

	if err := handler.rules.CreateRule(ctx, rule); err != nil {
		writeProgressionError(w, "create rule", err)
		return
	}

	ruleJson, err := json.Marshal(rule)
	if err != nil {
		log.Errorf("marshal created rule: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "create rule failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new progression rule added: %+v", rule)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, ruleJson, http.StatusCreated)
}

func (handler *Handler) HandleGetRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.rules.get")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exercise"]

	rule, err := handler.rules.GetRule(ctx, exerciseID)
	if err != nil {
		writeProgressionError(w, "get rule", err)
		return
	}

	ruleJson, err := json.Marshal(rule)
	if err != nil {
		log.Errorf("marshal rule: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get rule failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, ruleJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.rules.update")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exercise"]

	var update RuleUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Errorf("update rule, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}

	if err := update.Validate(); err != nil {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.rules.UpdateRule(ctx, exerciseID, update); err != nil {
		writeProgressionError(w, "update rule", err)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDeleteRule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.rules.delete")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exercise"]

	if err := handler.rules.DeleteRule(ctx, exerciseID); err != nil {
		writeProgressionError(w, "delete rule", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.suggest")
	defer span.End()

	var params SuggestParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("suggest weight, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}

	suggestion, err := handler.advisor.SuggestWeight(ctx, params)
	if err != nil {
		writeProgressionError(w, "suggest weight", err)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterSuggestions.WithLabelValues(suggestion.Action).Inc()
	}

	suggestionJson, err := json.Marshal(suggestion)
	if err != nil {
		log.Errorf("marshal suggestion: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "suggest weight failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, suggestionJson, http.StatusOK)
}

type recordWeightRequest struct {
	UserID     string  `json:"userId"`
	ExerciseID string  `json:"exerciseId"`
	Weight     float64 `json:"weight"`
}

func (handler *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.record")
	defer span.End()

	var req recordWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("record weight, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.ExerciseID == "" {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
			"user id and exercise id are required", http.StatusBadRequest)
		return
	}
	if req.Weight < 0 {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
			"weight must not be negative", http.StatusBadRequest)
		return
	}

	state, err := handler.state.RecordWeight(ctx, req.UserID, req.ExerciseID, req.Weight)
	if err != nil {
		writeProgressionError(w, "record weight", err)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterProgressionRecords.Inc()
	}

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("marshal progression state: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "record weight failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func (handler *Handler) HandleGetProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.get")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]
	exerciseID := vars["exercise"]

	state, err := handler.state.Get(ctx, userID, exerciseID)
	if err != nil {
		writeProgressionError(w, "get progression", err)
		return
	}

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("marshal progression state: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get progression failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func writeProgressionError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrRuleNotFound):
		pkg.WriteAPIError(w, pkg.ErrorKind.NotFound, ErrRuleNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, ErrProgressionNotFound):
		pkg.WriteAPIError(w, pkg.ErrorKind.NotFound, ErrProgressionNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, ErrRuleExists):
		pkg.WriteAPIError(w, pkg.ErrorKind.Duplicate, ErrRuleExists.Error(), http.StatusConflict)
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, action+" failed", http.StatusInternalServerError)
	}
}
