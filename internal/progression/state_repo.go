package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// recordWeightMaxRetries bounds the compare-and-set retry loop in
// RecordWeight. Contention on a single (user, exercise) key is rare,
// a handful of attempts is plenty.
const recordWeightMaxRetries = 10

type StateRepo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewStateRepo(db *pgxpool.Pool) *StateRepo {
	return &StateRepo{
		db:  db,
		now: time.Now,
	}
}

func (r *StateRepo) Get(ctx context.Context, userID, exerciseID string) (_ UserProgression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.state.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("userId", userID),
		attribute.String("exerciseId", exerciseID),
	)

	var state UserProgression
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    user_id, exercise_id, current_weight, sessions_at_weight, last_updated
			FROM user_progression
			WHERE user_id = $1 AND exercise_id = $2
		`,
		userID, exerciseID,
	).Scan(
		&state.UserID,
		&state.ExerciseID,
		&state.CurrentWeight,
		&state.SessionsAtWeight,
		&state.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserProgression{}, ErrProgressionNotFound
		}
		return UserProgression{}, fmt.Errorf("user progression [query row]: %w", err)
	}

	return state, nil
}

// RecordWeight runs the progression state transition for the given weight
// and persists it. Concurrent writers to the same (user, exercise) key are
// handled with a compare-and-set retry loop, so no transition is lost.
func (r *StateRepo) RecordWeight(ctx context.Context, userID, exerciseID string, newWeight float64) (_ UserProgression, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.state.recordWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("userId", userID),
		attribute.String("exerciseId", exerciseID),
		attribute.Float64("newWeight", newWeight),
	)

	for attempt := 0; attempt < recordWeightMaxRetries; attempt++ {
		state, err := r.Get(ctx, userID, exerciseID)
		if errors.Is(err, ErrProgressionNotFound) {
			created := UserProgression{
				UserID:           userID,
				ExerciseID:       exerciseID,
				CurrentWeight:    newWeight,
				SessionsAtWeight: 1,
				LastUpdated:      r.now(),
			}
			tag, err := r.db.Exec(
				ctx,
				`INSERT INTO user_progression
						(user_id, exercise_id, current_weight, sessions_at_weight, last_updated)
					VALUES ($1, $2, $3, $4, $5)
					ON CONFLICT (user_id, exercise_id) DO NOTHING;`,
				created.UserID, created.ExerciseID, created.CurrentWeight,
				created.SessionsAtWeight, created.LastUpdated,
			)
			if err != nil {
				return UserProgression{}, fmt.Errorf("insert user progression: %w", err)
			}
			if tag.RowsAffected() == 1 {
				return created, nil
			}
			// the row appeared in the meantime, retry as an update
			continue
		}
		if err != nil {
			return UserProgression{}, err
		}

		updated := state
		updated.Apply(newWeight, r.now())

		tag, err := r.db.Exec(
			ctx,
			`UPDATE user_progression
				SET current_weight = $1, sessions_at_weight = $2, last_updated = $3
				WHERE user_id = $4 AND exercise_id = $5
					AND current_weight = $6 AND sessions_at_weight = $7;`,
			updated.CurrentWeight, updated.SessionsAtWeight, updated.LastUpdated,
			userID, exerciseID,
			state.CurrentWeight, state.SessionsAtWeight,
		)
		if err != nil {
			return UserProgression{}, fmt.Errorf("update user progression: %w", err)
		}
		if tag.RowsAffected() == 1 {
			return updated, nil
		}
		// lost the race against a concurrent writer, reread and retry
	}

	return UserProgression{}, fmt.Errorf(
		"record weight for user %s, exercise %s: too many concurrent updates", userID, exerciseID,
	)
}
