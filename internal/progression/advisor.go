package progression

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var Action = struct {
	Increase string
	Maintain string
	Deload   string
}{
	Increase: "increase",
	Maintain: "maintain",
	Deload:   "deload",
}

// Suggestion is the advisor's verdict for the next session. It is never
// persisted, recording the actual outcome is a separate RecordWeight call.
type Suggestion struct {
	NewWeight float64 `json:"newWeight"`
	Action    string  `json:"action"`
	Reason    string  `json:"reason"`
}

type SuggestParams struct {
	UserID     string  `json:"userId"`
	ExerciseID string  `json:"exerciseId"`
	LastWeight float64 `json:"lastWeight"`
	LastSets   int     `json:"lastSets"`
	LastReps   int     `json:"lastReps"`
}

func (p SuggestParams) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if p.ExerciseID == "" {
		return fmt.Errorf("%w: exercise id is required", ErrInvalidInput)
	}
	if p.LastWeight < 0 {
		return fmt.Errorf("%w: lastWeight must not be negative", ErrInvalidInput)
	}
	if p.LastSets <= 0 {
		return fmt.Errorf("%w: lastSets must be greater than 0", ErrInvalidInput)
	}
	if p.LastReps <= 0 {
		return fmt.Errorf("%w: lastReps must be greater than 0", ErrInvalidInput)
	}
	return nil
}

//go:generate mockgen -source=$GOFILE -destination=advisor_mocks_test.go -package=progression_test

type rulesGetter interface {
	GetRule(ctx context.Context, exerciseID string) (Rule, error)
}

type stateGetter interface {
	Get(ctx context.Context, userID, exerciseID string) (UserProgression, error)
}

// Advisor combines the exercise's progression rule with the user's tracked
// state to decide whether the next session should go up, hold, or back off.
// It reads state but never mutates it.
type Advisor struct {
	rules rulesGetter
	state stateGetter
}

func NewAdvisor(rules rulesGetter, state stateGetter) *Advisor {
	return &Advisor{
		rules: rules,
		state: state,
	}
}

func (a *Advisor) SuggestWeight(ctx context.Context, params SuggestParams) (_ Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.advisor.suggestWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("userId", params.UserID),
		attribute.String("exerciseId", params.ExerciseID),
	)

	rule, err := a.rules.GetRule(ctx, params.ExerciseID)
	if err != nil {
		return Suggestion{}, err
	}

	if err := params.Validate(); err != nil {
		return Suggestion{}, err
	}

	state, err := a.state.Get(ctx, params.UserID, params.ExerciseID)
	if err != nil {
		if errors.Is(err, ErrProgressionNotFound) {
			// an exercise never auto-increases on its very first exposure
			return Suggestion{
				NewWeight: params.LastWeight,
				Action:    Action.Maintain,
				Reason:    "first session - establish baseline",
			}, nil
		}
		return Suggestion{}, err
	}

	if state.SessionsAtWeight >= rule.TargetSessions {
		if params.LastWeight == state.CurrentWeight {
			return Suggestion{
				NewWeight: state.CurrentWeight + rule.Increment,
				Action:    Action.Increase,
				Reason:    fmt.Sprintf("completed %d target sessions", rule.TargetSessions),
			}, nil
		}
		return Suggestion{
			NewWeight: params.LastWeight,
			Action:    Action.Maintain,
			Reason:    "already progressing",
		}, nil
	}

	// the drop is measured against the tracked weight, not the previous lift
	if params.LastWeight < state.CurrentWeight*(1-rule.DeloadThreshold) {
		return Suggestion{
			NewWeight: math.Max(state.CurrentWeight*0.9, params.LastWeight),
			Action:    Action.Deload,
			Reason:    "significant drop detected",
		}, nil
	}

	return Suggestion{
		NewWeight: state.CurrentWeight,
		Action:    Action.Maintain,
		Reason: fmt.Sprintf(
			"continue toward target sessions (%d of %d)",
			state.SessionsAtWeight, rule.TargetSessions,
		),
	}, nil
}
