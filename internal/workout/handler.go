package workout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dstanisic/liftcoach/internal/progression"
	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"
	"github.com/dstanisic/liftcoach/internal/volume"
	"github.com/dstanisic/liftcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultLookbackDays = 7

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type entriesRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	Delete(ctx context.Context, id int) error
	RecentEntries(ctx context.Context, userID string, lookbackDays int) ([]Entry, error)
}

type progressionRecorder interface {
	RecordWeight(ctx context.Context, userID, exerciseID string, newWeight float64) (progression.UserProgression, error)
}

type volumeUpdater interface {
	UpdateVolume(ctx context.Context, params volume.UpdateParams) (volume.UpdateResult, error)
}

// Handler logs workout entries and fans each new entry out to the
// progression state machine and the weekly volume accumulator.
type Handler struct {
	repo        entriesRepo
	progression progressionRecorder
	volume      volumeUpdater
}

func NewHandler(
	repo entriesRepo,
	progressionRecorder progressionRecorder,
	volumeUpdater volumeUpdater,
) *Handler {
	return &Handler{
		repo:        repo,
		progression: progressionRecorder,
		volume:      volumeUpdater,
	}
}

type addEntryResponse struct {
	Entry       *Entry                       `json:"entry"`
	Progression *progression.UserProgression `json:"progression,omitempty"`
	Volume      *volume.UpdateResult         `json:"volume,omitempty"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.add")
	defer span.End()

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("new workout entry, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}

	if err := entry.Validate(); err != nil {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, err.Error(), http.StatusBadRequest)
		return
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	added, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("add workout entry: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "add workout entry failed", http.StatusInternalServerError)
		return
	}

	resp := addEntryResponse{Entry: added}

	// the entry is saved at this point, downstream bookkeeping failures
	// are logged and surfaced as missing fields in the response
	state, err := handler.progression.RecordWeight(ctx, added.UserID, added.ExerciseID, added.Weight)
	if err != nil {
		log.Errorf("workout entry %d, record progression: %s", added.ID, err)
	} else {
		resp.Progression = &state
	}

	volumeResult, err := handler.volume.UpdateVolume(ctx, volume.UpdateParams{
		UserID:     added.UserID,
		ExerciseID: added.ExerciseID,
		Sets:       added.Sets,
		Reps:       added.Reps,
		Weight:     added.Weight,
		WeekStart:  added.CreatedAt,
	})
	if err != nil {
		log.Errorf("workout entry %d, update volume: %s", added.ID, err)
	} else {
		resp.Volume = &volumeResult
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal add entry response: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "add workout entry failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout entry added: %+v", added)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.recent")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["user"]

	lookbackDays := defaultLookbackDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days <= 0 {
			pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
				"days must be a positive integer", http.StatusBadRequest)
			return
		}
		lookbackDays = days
	}

	entries, err := handler.repo.RecentEntries(ctx, userID, lookbackDays)
	if err != nil {
		log.Errorf("recent workout entries for %s: %s", userID, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get workout entries failed", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal workout entries: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get workout entries failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid entry id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			pkg.WriteAPIError(w, pkg.ErrorKind.NotFound, "workout entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout entry %d: %s", id, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "delete workout entry failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}
