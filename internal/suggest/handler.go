package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dstanisic/liftcoach/internal/telemetry/metrics"
	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"
	"github.com/dstanisic/liftcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=suggest_test

type workoutSuggester interface {
	SuggestedWorkouts(ctx context.Context, userID string, limit, lookbackDays int) ([]MuscleGroupSuggestion, error)
}

type Handler struct {
	ranker  workoutSuggester
	metrics *metrics.Manager
}

func NewHandler(ranker workoutSuggester, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		ranker:  ranker,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleSuggestedWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.suggest.workouts")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]

	limit, ok := positiveIntParam(w, r, "limit")
	if !ok {
		return
	}
	lookbackDays, ok := positiveIntParam(w, r, "days")
	if !ok {
		return
	}

	suggestions, err := handler.ranker.SuggestedWorkouts(ctx, userID, limit, lookbackDays)
	if err != nil {
		log.Errorf("suggested workouts for %s: %s", userID, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get suggested workouts failed", http.StatusInternalServerError)
		return
	}

	suggestionsJson, err := json.Marshal(suggestions)
	if err != nil {
		log.Errorf("marshal suggested workouts: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get suggested workouts failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutSuggestions.Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, suggestionsJson, http.StatusOK)
}

// positiveIntParam reads an optional positive integer query parameter,
// returning 0 when absent. Writes a validation error and returns false on
// malformed input.
func positiveIntParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	param := r.URL.Query().Get(name)
	if param == "" {
		return 0, true
	}
	value, err := strconv.Atoi(param)
	if err != nil || value <= 0 {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
			name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return value, true
}
