package volume

import (
	"context"
	"fmt"
	"time"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=volume_test

type muscleGroupResolver interface {
	MuscleGroupsFor(ctx context.Context, exerciseID string) ([]string, error)
}

type volumeIncrementer interface {
	Increment(ctx context.Context, userID, muscleGroup string, weekStart time.Time, delta float64) error
	WeekRows(ctx context.Context, userID string, weekStart time.Time) ([]WeeklyVolumeRow, error)
}

type UpdateParams struct {
	UserID     string    `json:"userId"`
	ExerciseID string    `json:"exerciseId"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	WeekStart  time.Time `json:"weekStart,omitempty"`
}

func (p UpdateParams) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if p.ExerciseID == "" {
		return fmt.Errorf("%w: exercise id is required", ErrInvalidInput)
	}
	if p.Sets <= 0 {
		return fmt.Errorf("%w: sets must be greater than 0", ErrInvalidInput)
	}
	if p.Reps <= 0 {
		return fmt.Errorf("%w: reps must be greater than 0", ErrInvalidInput)
	}
	if p.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidInput)
	}
	return nil
}

type UpdateResult struct {
	WeekStart    time.Time `json:"weekStart"`
	Contribution float64   `json:"contribution"`
	MuscleGroups []string  `json:"muscleGroups"`
}

// Service spreads a workout's volume contribution over the muscle groups
// the exercise targets, one atomic increment per group.
type Service struct {
	repo     volumeIncrementer
	resolver muscleGroupResolver
	now      func() time.Time
}

func NewService(repo volumeIncrementer, resolver muscleGroupResolver) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		now:      time.Now,
	}
}

func (s *Service) UpdateVolume(ctx context.Context, params UpdateParams) (_ UpdateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "volume.service.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("userId", params.UserID),
		attribute.String("exerciseId", params.ExerciseID),
	)

	if err := params.Validate(); err != nil {
		return UpdateResult{}, err
	}

	weekStart := params.WeekStart
	if weekStart.IsZero() {
		weekStart = WeekStartUTC(s.now())
	} else {
		weekStart = WeekStartUTC(weekStart)
	}

	muscleGroups, err := s.resolver.MuscleGroupsFor(ctx, params.ExerciseID)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("resolve muscle groups for %s: %w", params.ExerciseID, err)
	}

	contribution := float64(params.Sets) * float64(params.Reps) * params.Weight
	for _, muscleGroup := range muscleGroups {
		if err := s.repo.Increment(ctx, params.UserID, muscleGroup, weekStart, contribution); err != nil {
			return UpdateResult{}, err
		}
	}

	return UpdateResult{
		WeekStart:    weekStart,
		Contribution: contribution,
		MuscleGroups: muscleGroups,
	}, nil
}

func (s *Service) WeekRows(ctx context.Context, userID string, weekStart time.Time) ([]WeeklyVolumeRow, error) {
	return s.repo.WeekRows(ctx, userID, WeekStartUTC(weekStart))
}
