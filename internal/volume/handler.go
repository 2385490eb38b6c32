package volume

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

const weekParamLayout = "2006-01-02"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=volume_test

type volumeService interface {
	UpdateVolume(ctx context.Context, params UpdateParams) (UpdateResult, error)
	WeekRows(ctx context.Context, userID string, weekStart time.Time) ([]WeeklyVolumeRow, error)
}

type balanceChecker interface {
	CheckBalance(ctx context.Context, userID string, weekStart time.Time) ([]string, error)
}

type Handler struct {
	service  volumeService
	analyzer balanceChecker
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewHandler(service volumeService, analyzer balanceChecker, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:  service,
		analyzer: analyzer,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.volume.update")
	defer span.End()

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("update volume, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}

	result, err := handler.service.UpdateVolume(ctx, params)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			pkg.WriteAPIError(w, pkg.ErrorKind.Validation, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("update volume: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "update volume failed", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterVolumeUpdates.Inc()
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal volume update result: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "update volume failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.volume.getWeek")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]

	weekStart, err := time.Parse(weekParamLayout, vars["weekStart"])
	if err != nil {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
			"invalid week start, expected format "+weekParamLayout, http.StatusBadRequest)
		return
	}

	rows, err := handler.service.WeekRows(ctx, userID, weekStart)
	if err != nil {
		log.Errorf("get weekly volume for %s: %s", userID, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get weekly volume failed", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []WeeklyVolumeRow{}
	}

	rowsJson, err := json.Marshal(rows)
	if err != nil {
		log.Errorf("marshal weekly volume rows: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get weekly volume failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, rowsJson, http.StatusOK)
}

type balanceResponse struct {
	WeekStart    time.Time `json:"weekStart"`
	Undertrained []string  `json:"undertrained"`
}

func (handler *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.volume.balance")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]

	// default to the current week, allow an explicit ?week=YYYY-MM-DD
	weekStart := WeekStartUTC(handler.now())
	if weekParam := r.URL.Query().Get("week"); weekParam != "" {
		parsed, err := time.Parse(weekParamLayout, weekParam)
		if err != nil {
			pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
				"invalid week, expected format "+weekParamLayout, http.StatusBadRequest)
			return
		}
		weekStart = WeekStartUTC(parsed)
	}

	flagged, err := handler.analyzer.CheckBalance(ctx, userID, weekStart)
	if err != nil {
		log.Errorf("check balance for %s: %s", userID, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "check balance failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(balanceResponse{
		WeekStart:    weekStart,
		Undertrained: flagged,
	})
	if err != nil {
		log.Errorf("marshal balance response: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "check balance failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
