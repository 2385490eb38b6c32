package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"
	"github.com/dstanisic/liftcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type exerciseTypesRepo interface {
	Add(ctx context.Context, exerciseType ExerciseType) error
	Get(ctx context.Context, exerciseTypeID string) (ExerciseType, error)
	List(ctx context.Context) ([]ExerciseType, error)
	Update(ctx context.Context, exerciseType ExerciseType) error
	Delete(ctx context.Context, exerciseTypeID string) error
}

type cacheInvalidator interface {
	Invalidate(exerciseID string)
}

type Handler struct {
	repo     exerciseTypesRepo
	resolver cacheInvalidator
}

func NewHandler(repo exerciseTypesRepo, resolver cacheInvalidator) *Handler {
	return &Handler{
		repo:     repo,
		resolver: resolver,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add")
	defer span.End()

	var exerciseType ExerciseType
	if err := json.NewDecoder(r.Body).Decode(&exerciseType); err != nil {
		log.Errorf("new exercise type, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}

	if exerciseType.ID == "" || exerciseType.Name == "" || len(exerciseType.MuscleGroups) == 0 {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
			"exercise id, name and muscle groups are required", http.StatusBadRequest)
		return
	}

	for i, mg := range exerciseType.MuscleGroups {
		mg = strings.ToLower(mg)
		if !slices.Contains(MuscleGroups, mg) {
			pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
				"invalid muscle group: "+mg, http.StatusBadRequest)
			return
		}
		exerciseType.MuscleGroups[i] = mg
	}

	if exerciseType.CreatedAt.IsZero() {
		exerciseType.CreatedAt = time.Now()
	}

	if err := handler.repo.Add(ctx, exerciseType); err != nil {
		if errors.Is(err, ErrExerciseTypeExists) {
			pkg.WriteAPIError(w, pkg.ErrorKind.Duplicate, "exercise type already exists", http.StatusConflict)
			return
		}
		log.Errorf("add exercise type: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "add exercise type failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise type added: %+v", exerciseType)
	w.WriteHeader(http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exercise"]

	exerciseType, err := handler.repo.Get(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			pkg.WriteAPIError(w, pkg.ErrorKind.NotFound, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise type %s: %s", exerciseID, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get exercise type failed", http.StatusInternalServerError)
		return
	}

	exerciseTypeJson, err := json.Marshal(exerciseType)
	if err != nil {
		log.Errorf("marshal exercise type: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "get exercise type failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseTypeJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	exerciseTypes, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list exercise types: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "list exercise types failed", http.StatusInternalServerError)
		return
	}
	if exerciseTypes == nil {
		exerciseTypes = []ExerciseType{}
	}

	exerciseTypesJson, err := json.Marshal(exerciseTypes)
	if err != nil {
		log.Errorf("marshal exercise types: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "list exercise types failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseTypesJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.update")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exercise"]

	var exerciseType ExerciseType
	if err := json.NewDecoder(r.Body).Decode(&exerciseType); err != nil {
		log.Errorf("update exercise type, unmarshal json params: %s", err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation, "invalid json", http.StatusBadRequest)
		return
	}
	exerciseType.ID = exerciseID

	if exerciseType.Name == "" || len(exerciseType.MuscleGroups) == 0 {
		pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
			"exercise name and muscle groups are required", http.StatusBadRequest)
		return
	}

	for i, mg := range exerciseType.MuscleGroups {
		mg = strings.ToLower(mg)
		if !slices.Contains(MuscleGroups, mg) {
			pkg.WriteAPIError(w, pkg.ErrorKind.Validation,
				"invalid muscle group: "+mg, http.StatusBadRequest)
			return
		}
		exerciseType.MuscleGroups[i] = mg
	}

	if err := handler.repo.Update(ctx, exerciseType); err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			pkg.WriteAPIError(w, pkg.ErrorKind.NotFound, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise type %s: %s", exerciseID, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "update exercise type failed", http.StatusInternalServerError)
		return
	}

	handler.resolver.Invalidate(exerciseID)
	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.delete")
	defer span.End()

	vars := mux.Vars(r)
	exerciseID := vars["exercise"]

	if err := handler.repo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, ErrExerciseTypeNotFound) {
			pkg.WriteAPIError(w, pkg.ErrorKind.NotFound, "exercise type not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise type %s: %s", exerciseID, err)
		pkg.WriteAPIError(w, pkg.ErrorKind.Internal, "delete exercise type failed", http.StatusInternalServerError)
		return
	}

	handler.resolver.Invalidate(exerciseID)
	pkg.WriteTextResponseOK(w, "deleted")
}
