package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour             = 60 * 60
	muscleGroupsExpire  = oneHour * 12
	muscleGroupsKeyTmpl = "muscle-groups::%s"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=catalog_test

type exerciseTypeGetter interface {
	Get(ctx context.Context, exerciseTypeID string) (ExerciseType, error)
}

// Resolver maps exercise IDs to their muscle groups, with a read-through
// in-memory cache in front of the repo. Muscle group assignments change
// rarely, so a long cache expire is fine.
type Resolver struct {
	repo  exerciseTypeGetter
	cache *freecache.Cache
}

func NewResolver(repo exerciseTypeGetter, cacheSizeBytes int) *Resolver {
	return &Resolver{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeBytes),
	}
}

func (res *Resolver) MuscleGroupsFor(ctx context.Context, exerciseID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.resolver.muscleGroupsFor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte(fmt.Sprintf(muscleGroupsKeyTmpl, exerciseID))
	if cachedBytes, err := res.cache.Get(cacheKey); err == nil {
		var muscleGroups []string
		if err := json.Unmarshal(cachedBytes, &muscleGroups); err == nil {
			return muscleGroups, nil
		}
		log.Errorf("unmarshal cached muscle groups for %s: %s", exerciseID, err)
	}

	exerciseType, err := res.repo.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	muscleGroupsJson, err := json.Marshal(exerciseType.MuscleGroups)
	if err != nil {
		return nil, fmt.Errorf("marshal muscle groups: %w", err)
	}
	if err := res.cache.Set(cacheKey, muscleGroupsJson, muscleGroupsExpire); err != nil {
		log.Errorf("set muscle groups cache for %s: %s", exerciseID, err)
	}

	return exerciseType.MuscleGroups, nil
}

// Invalidate drops the cached muscle groups for the given exercise.
// Called after catalog updates and deletes.
func (res *Resolver) Invalidate(exerciseID string) {
	cacheKey := []byte(fmt.Sprintf(muscleGroupsKeyTmpl, exerciseID))
	res.cache.Del(cacheKey)
}
